package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edlparser/internal/edl"
)

type parseFileOutput struct {
	Path      string            `json:"path"`
	Records   []edl.ClipRecord  `json:"records"`
	Malformed []malformedOutput `json:"malformed"`
	Filtered  int               `json:"filtered"`
	Lines     int               `json:"lines"`
}

type malformedOutput struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Text   string `json:"text"`
}

type parseOutput struct {
	Files []parseFileOutput `json:"files"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var force bool

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the clip records extracted from EDL files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := ctx.parseInputs(cmd, args, force)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, buildParseOutput(files))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRecordTable(allRecords(files)))
			printFileSummaries(newStatusPrinter(out), files, true)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Parse files regardless of extension")
	return cmd
}

func buildParseOutput(files []parsedFile) parseOutput {
	out := parseOutput{Files: make([]parseFileOutput, 0, len(files))}
	for _, f := range files {
		records := f.Result.Records
		if records == nil {
			records = []edl.ClipRecord{}
		}
		entry := parseFileOutput{
			Path:      f.Path,
			Records:   records,
			Malformed: make([]malformedOutput, 0, len(f.Result.Malformed)),
			Filtered:  f.Result.Filtered,
			Lines:     f.Result.Lines,
		}
		for _, m := range f.Result.Malformed {
			entry.Malformed = append(entry.Malformed, malformedOutput{Line: m.Line, Reason: m.Reason, Text: m.Text})
		}
		out.Files = append(out.Files, entry)
	}
	return out
}
