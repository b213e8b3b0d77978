package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"edlparser/internal/edl"
	"edlparser/internal/logging"
)

const defaultDirPerm fs.FileMode = 0o755

// Report summarizes one Materialize run.
type Report struct {
	Records int
	// Created lists directories created (or, in a dry run, that would be
	// created) in creation order.
	Created []string
	// Existing counts directory checks that found the directory in place.
	Existing int
	Failures []*DirectoryCreationError
}

// Failed returns the number of records that hit a directory failure.
func (r Report) Failed() int {
	return len(r.Failures)
}

// Err joins all failures, or returns nil when every directory was ensured.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, failure := range r.Failures {
		errs = append(errs, failure)
	}
	return errors.Join(errs...)
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger routes progress and failure diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Materializer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDirPerm sets the permission bits for created directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(m *Materializer) {
		if perm != 0 {
			m.perm = perm
		}
	}
}

// WithDryRun reports the directories that would be created without touching
// the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(m *Materializer) {
		m.dryRun = dryRun
	}
}

// Materializer creates season/episode/shot directories.
type Materializer struct {
	logger *slog.Logger
	perm   fs.FileMode
	dryRun bool
}

// New builds a Materializer with the supplied options.
func New(opts ...Option) *Materializer {
	m := &Materializer{logger: logging.NewNop(), perm: defaultDirPerm}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize ensures base/season/episode/shot for each record, in order.
// A record with an empty shot stops at its episode directory.
func Materialize(records []edl.ClipRecord, base string) error {
	return New().Materialize(records, base).Err()
}

// Materialize ensures the directory tree for records under base.
func (m *Materializer) Materialize(records []edl.ClipRecord, base string) Report {
	report := Report{Records: len(records)}
	planned := make(map[string]struct{})
	for _, rec := range records {
		m.materializeRecord(&report, planned, base, rec)
	}

	attrs := []logging.Attr{
		logging.String("base", base),
		logging.Int("records", report.Records),
		logging.Int("created", len(report.Created)),
		logging.Int("existing", report.Existing),
		logging.Int("failed", report.Failed()),
	}
	if m.dryRun {
		attrs = append(attrs, logging.Bool("dry_run", true))
	}
	m.logger.Info("folder generation finished", logging.Args(attrs...)...)
	return report
}

func (m *Materializer) materializeRecord(report *Report, planned map[string]struct{}, base string, rec edl.ClipRecord) {
	levels := []string{rec.Season, rec.Episode}
	if rec.Shot != "" {
		levels = append(levels, rec.Shot)
	}

	dir := base
	for _, name := range levels {
		next := filepath.Join(dir, name)
		if err := validateComponent(name); err != nil {
			m.fail(report, &DirectoryCreationError{Path: next, Record: rec, Err: err})
			return
		}
		dir = next
		created, err := m.ensureDir(dir, planned)
		if err != nil {
			m.fail(report, &DirectoryCreationError{Path: dir, Record: rec, Err: err})
			return
		}
		if created {
			report.Created = append(report.Created, dir)
			m.logger.Debug("directory created", logging.String("path", dir))
		} else {
			report.Existing++
		}
	}
}

func (m *Materializer) fail(report *Report, failure *DirectoryCreationError) {
	report.Failures = append(report.Failures, failure)
	logging.WarnWithContext(m.logger, "directory creation failed", "folder_create_failed",
		logging.String("path", failure.Path),
		logging.String("clip", failure.Record.ClipName),
		logging.Error(failure.Err),
		logging.String(logging.FieldErrorHint, "check permissions and that no file occupies the path"),
		logging.String(logging.FieldImpact, "remaining levels for this clip skipped"),
	)
}

// ensureDir reports whether path was created. Existing directories are left
// untouched.
func (m *Materializer) ensureDir(path string, planned map[string]struct{}) (bool, error) {
	if _, ok := planned[path]; ok {
		return false, nil
	}
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, ErrNotDirectory
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}

	if m.dryRun {
		planned[path] = struct{}{}
		return true, nil
	}
	if err := os.MkdirAll(path, m.perm); err != nil {
		return false, err
	}
	return true, nil
}

func validateComponent(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidComponent)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidComponent, name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidComponent, name)
	}
	return nil
}
