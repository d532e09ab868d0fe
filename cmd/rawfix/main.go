package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rawfix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rawfix",
	Short: "String literal refactoring assists for Rust-style source",
	Long:  "rawfix locates string literal tokens and offers raw/plain conversions and fence adjustments as applyable fixes.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to rawfix.toml (default: discovered upward from the working directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
