package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rawfix/internal/diag"
	"rawfix/internal/diagfmt"
	"rawfix/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.rs|directory>",
	Short: "Scan source for lexical problems and available assists",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("fixes", true, "include fix suggestions in the output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showFixes, err := cmd.Flags().GetBool("fixes")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}

	var results []*driver.Result
	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if info.IsDir() {
		results, err = driver.AnalyzeDir(cmd.Context(), args[0], opts)
	} else {
		var res *driver.Result
		res, err = driver.Analyze(args[0], opts)
		results = []*driver.Result{res}
	}
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	useColor, err := colorEnabled(cmd, cfg)
	if err != nil {
		return err
	}

	errorCount := 0
	for _, res := range results {
		res.Bag.Sort()
		if res.Bag.HasErrors() {
			for _, d := range res.Bag.Items() {
				if d.Severity >= diag.SevError {
					errorCount++
				}
			}
		}

		switch format {
		case "json":
			if err := diagfmt.JSON(cmd.OutOrStdout(), res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         pathMode(cfg),
				IncludeNotes:     true,
				IncludeFixes:     showFixes,
			}); err != nil {
				return err
			}
		case "pretty":
			diagfmt.Pretty(cmd.OutOrStdout(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor,
				PathMode:  pathMode(cfg),
				ShowNotes: true,
				ShowFixes: showFixes,
			})
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("check: %d lexical errors found", errorCount)
	}
	if !quiet(cmd) && format == "pretty" {
		fmt.Fprintln(cmd.OutOrStdout(), "check passed")
	}
	return nil
}
