package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rawfix/internal/assist"
	"rawfix/internal/diag"
	"rawfix/internal/fix"
	"rawfix/internal/source"
	"rawfix/internal/ui"
)

var assistCmd = &cobra.Command{
	Use:   "assist [flags] <file>",
	Short: "List or apply string literal assists at a cursor position",
	Long:  "Evaluate which assists are applicable at a byte offset, print them, and optionally apply one by id or through an interactive picker.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssist,
}

func init() {
	assistCmd.Flags().Uint32("offset", 0, "byte offset of the cursor in the file")
	assistCmd.Flags().String("apply", "", "apply the assist with this id")
	assistCmd.Flags().Bool("pick", false, "choose an assist interactively")
	assistCmd.Flags().String("format", "pretty", "output format for listings (pretty|json)")
	_ = assistCmd.MarkFlagRequired("offset")
}

func runAssist(cmd *cobra.Command, args []string) error {
	offset, err := cmd.Flags().GetUint32("offset")
	if err != nil {
		return err
	}
	applyID, err := cmd.Flags().GetString("apply")
	if err != nil {
		return err
	}
	pick, err := cmd.Flags().GetBool("pick")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if applyID != "" && pick {
		return fmt.Errorf("--apply and --pick are mutually exclusive")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("assist: %w", err)
	}
	file := fs.Get(fileID)

	disabled := make(map[string]bool, len(cfg.Assists.Disabled))
	for _, id := range cfg.Assists.Disabled {
		disabled[id] = true
	}

	var assists []assist.Assist
	for _, a := range assist.At(assist.Context{File: file, Offset: offset}) {
		if !disabled[a.ID] {
			assists = append(assists, a)
		}
	}

	switch {
	case applyID != "":
		return applyAssist(cmd.OutOrStdout(), fs, assists, applyID)
	case pick:
		choice, err := ui.PickAssist(assists)
		if err != nil {
			return err
		}
		if choice < 0 {
			return nil
		}
		return applyAssist(cmd.OutOrStdout(), fs, assists, assists[choice].ID)
	default:
		return listAssists(cmd.OutOrStdout(), assists, format)
	}
}

func listAssists(out io.Writer, assists []assist.Assist, format string) error {
	switch format {
	case "json":
		type assistPayload struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Start  uint32 `json:"start_byte"`
			End    uint32 `json:"end_byte"`
			Result string `json:"result,omitempty"`
		}
		payload := make([]assistPayload, 0, len(assists))
		for _, a := range assists {
			p := assistPayload{ID: a.ID, Title: a.Title, Start: a.Target.Start, End: a.Target.End}
			if len(a.Fix.Edits) == 1 {
				p.Result = a.Fix.Edits[0].NewText
			}
			payload = append(payload, p)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		if len(assists) == 0 {
			fmt.Fprintln(out, "no assists applicable at this position")
			return nil
		}
		for _, a := range assists {
			fmt.Fprintf(out, "%-20s %s\n", a.ID, a.Title)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

// applyAssist funnels the chosen assist through the fix engine so the same
// guard and conflict checks run as in batch mode.
func applyAssist(out io.Writer, fs *source.FileSet, assists []assist.Assist, id string) error {
	for _, a := range assists {
		if a.ID != id {
			continue
		}
		d := diag.New(diag.SevInfo, diag.RefAssistAvailable, a.Target, a.Title).
			WithFixSuggestion(a.Fix)
		result, err := fix.Apply(fs, []diag.Diagnostic{d}, fix.ApplyOptions{
			Mode:     fix.ApplyModeID,
			TargetID: id,
		})
		if err != nil {
			return fmt.Errorf("apply %s: %w", id, err)
		}
		for _, change := range result.FileChanges {
			fmt.Fprintf(out, "applied %s to %s (%d edits)\n", id, change.Path, change.EditCount)
		}
		return nil
	}
	return fmt.Errorf("assist %q is not applicable here", id)
}
