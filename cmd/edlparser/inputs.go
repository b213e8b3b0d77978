package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"edlparser/internal/edl"
)

// parsedFile pairs an input path with its extraction result.
type parsedFile struct {
	Path   string
	Result edl.Result
}

// parseInputs extracts each path in argument order. Each file gets a fresh
// result; the first unreadable file aborts the run.
func (c *commandContext) parseInputs(cmd *cobra.Command, paths []string, force bool) ([]parsedFile, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !force {
		for _, path := range paths {
			if !edl.HasAllowedExtension(path, cfg.EDL.Extensions) {
				return nil, fmt.Errorf("%s: not an EDL file (allowed extensions: %s); use --force to parse it anyway",
					path, strings.Join(cfg.EDL.Extensions, ", "))
			}
		}
	}

	logger, err := c.loggerFor(cmd, "edl")
	if err != nil {
		return nil, err
	}
	extractor := edl.NewExtractor(edl.WithLogger(logger), edl.WithEncoding(cfg.EDL.Encoding))

	files := make([]parsedFile, 0, len(paths))
	for _, path := range paths {
		res, err := extractor.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, parsedFile{Path: path, Result: res})
	}
	return files, nil
}

func allRecords(files []parsedFile) []edl.ClipRecord {
	var records []edl.ClipRecord
	for _, f := range files {
		records = append(records, f.Result.Records...)
	}
	return records
}

func renderRecordTable(records []edl.ClipRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Columns())
	}
	return renderTable([]string{"Clip", "Shot", "Episode", "Season"}, rows, pluralize(len(records), "record"))
}

// printFileSummaries writes one status line per file, followed by the
// malformed lines of that file when withMalformed is set.
func printFileSummaries(p *statusPrinter, files []parsedFile, withMalformed bool) {
	for _, f := range files {
		res := f.Result
		kind := statusOK
		if len(res.Malformed) > 0 {
			kind = statusWarn
		}
		p.line(filepath.Base(f.Path), kind, fmt.Sprintf("%s, %d filtered, %d malformed",
			pluralize(len(res.Records), "record"), res.Filtered, len(res.Malformed)))
		if !withMalformed {
			continue
		}
		for _, m := range res.Malformed {
			p.detail("line %d: %s", m.Line, m.Reason)
		}
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		return strconv.Itoa(n) + " " + strings.TrimSuffix(noun, "y") + "ies"
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
