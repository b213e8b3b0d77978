package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"edlparser/internal/config"
	"edlparser/internal/folders"
	"edlparser/internal/logging"
	"edlparser/internal/preflight"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var baseFlag string
	var dryRun bool
	var quiet bool
	var force bool

	cmd := &cobra.Command{
		Use:   "generate FILE...",
		Short: "Create season/episode/shot folders for the clips in EDL files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			base, err := resolveBase(cfg, baseFlag)
			if err != nil {
				return err
			}
			if err := preflight.FirstFailure(preflight.RunAll(args, "")); err != nil {
				return err
			}
			files, err := ctx.parseInputs(cmd, args, force)
			if err != nil {
				return err
			}

			checkBase, err := prepareBase(cfg, base, dryRun)
			if err != nil {
				return err
			}
			if checkBase != "" {
				if err := preflight.CheckDirectoryAccess("Base directory", checkBase).Err(); err != nil {
					return err
				}
			}

			logger, err := ctx.loggerFor(cmd, "folders")
			if err != nil {
				return err
			}
			materializer := folders.New(
				folders.WithLogger(logger),
				folders.WithDirPerm(cfg.DirPerm()),
				folders.WithDryRun(dryRun),
			)
			start := time.Now()
			report := materializer.Materialize(allRecords(files), base)
			if report.Failed() > 0 {
				logging.ErrorWithContext(logger, "folder generation incomplete", "folder_generation_failed",
					logging.String("base", base),
					logging.Int("failed", report.Failed()),
					logging.Duration("elapsed", time.Since(start)),
					logging.String(logging.FieldErrorHint, "fix the listed paths and rerun; existing folders are kept"),
				)
			}

			out := cmd.OutOrStdout()
			printer := newStatusPrinter(out)
			if !quiet {
				fmt.Fprintln(out, renderRecordTable(allRecords(files)))
				printFileSummaries(printer, files, false)
				fmt.Fprintln(out)
			}
			printReport(printer, report, base, dryRun)

			if report.Failed() > 0 {
				return fmt.Errorf("folder generation: %s failed: %w",
					pluralize(report.Failed(), "record"), folders.ErrDirectoryCreation)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseFlag, "base", "", "Directory to create the folder tree in (default paths.base_dir or the working directory)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the folders that would be created without creating them")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the record table")
	cmd.Flags().BoolVar(&force, "force", false, "Parse files regardless of extension")
	return cmd
}

func resolveBase(cfg *config.Config, flagValue string) (string, error) {
	if trimmed := strings.TrimSpace(flagValue); trimmed != "" {
		expanded, err := config.ExpandPath(trimmed)
		if err != nil {
			return "", fmt.Errorf("resolve base directory: %w", err)
		}
		return expanded, nil
	}
	return cfg.ResolveBaseDir()
}

// prepareBase creates a missing base directory when the config allows it and
// returns the path the preflight access check should run against. A dry run
// against a missing base skips the check since nothing will be written.
func prepareBase(cfg *config.Config, base string, dryRun bool) (string, error) {
	_, err := os.Stat(base)
	switch {
	case err == nil:
		return base, nil
	case !errors.Is(err, fs.ErrNotExist):
		return base, nil
	case dryRun:
		return "", nil
	case !cfg.Folders.CreateBase:
		return base, nil
	}
	if err := os.MkdirAll(base, cfg.DirPerm()); err != nil {
		return "", fmt.Errorf("create base directory %q: %w", base, err)
	}
	return base, nil
}

func printReport(p *statusPrinter, report folders.Report, base string, dryRun bool) {
	title := "Folders"
	createdLabel := "Created"
	if dryRun {
		title = "Folders (dry run)"
		createdLabel = "Would create"
	}
	p.section(title)

	p.line("Base", statusInfo, base)
	createdKind := statusInfo
	if len(report.Created) > 0 {
		createdKind = statusOK
	}
	p.line(createdLabel, createdKind, pluralize(len(report.Created), "directory"))
	if dryRun {
		for _, dir := range report.Created {
			p.detail("%s", relativeTo(base, dir))
		}
	}
	p.line("Existing", statusInfo, pluralize(report.Existing, "directory"))

	if report.Failed() == 0 {
		p.line("Failed", statusOK, "none")
		return
	}
	p.line("Failed", statusError, pluralize(report.Failed(), "record"))
	for _, failure := range report.Failures {
		p.detail("%v", failure)
	}
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
