package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rawfix/internal/diagfmt"
	"rawfix/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.rs>",
	Short: "Tokenize a source file",
	Long:  "Tokenize breaks a source file into its constituent tokens.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.MaxDiagnostics
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	// Diagnostics go to stderr so the token stream stays pipeable.
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		useColor, err := colorEnabled(cmd, cfg)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:    useColor,
			PathMode: pathMode(cfg),
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
