package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edlparser/internal/folders"
	"edlparser/internal/preflight"
)

func TestGenerateCreatesTree(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.dir, "shots")

	out, _, err := runCLI(t, []string{"generate", "--base", base, env.edlPath}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	requireDir(t, filepath.Join(base, "s01", "e005", "e005s0007"))
	requireDir(t, filepath.Join(base, "s01", "e005", "e005s0012"))
	requireContains(t, out, "Clip")
	requireContains(t, out, "[OK] 4 directories")
	requireContains(t, out, "[OK] none")

	out, _, err = runCLI(t, []string{"generate", "--quiet", "--base", base, env.edlPath}, env.configPath)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	requireContains(t, out, "[INFO] 0 directories")
	requireContains(t, out, "[INFO] 6 directories")
	if strings.Contains(out, "Clip") {
		t.Fatalf("--quiet should skip the record table:\n%s", out)
	}
}

func TestGenerateDefaultsToWorkingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"generate", "-q", env.edlPath}, env.configPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireDir(t, filepath.Join(env.dir, "s01", "e005", "e005s0012"))
}

func TestGenerateUsesEnvBaseDir(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.dir, "from-env")
	t.Setenv("EDLPARSER_BASE_DIR", base)

	if _, _, err := runCLI(t, []string{"generate", "-q", env.edlPath}, env.configPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireDir(t, filepath.Join(base, "s01", "e005"))
}

func TestGenerateDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.dir, "planned")

	out, _, err := runCLI(t, []string{"generate", "--dry-run", "--base", base, env.edlPath}, env.configPath)
	if err != nil {
		t.Fatalf("generate --dry-run: %v", err)
	}
	requireContains(t, out, "Folders (dry run)")
	requireContains(t, out, "Would create:")
	requireContains(t, out, filepath.Join("s01", "e005", "e005s0007"))
	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create the base: %v", err)
	}
}

func TestGenerateReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.dir, "shots")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir base: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "s01"), nil, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	other := filepath.Join(env.dir, "ep201.edl")
	if err := os.WriteFile(other, []byte("REEL AX CLIP s02e01_0004-fx.wav\n"), 0o644); err != nil {
		t.Fatalf("write edl: %v", err)
	}

	out, _, err := runCLI(t, []string{"generate", "-q", "--base", base, env.edlPath, other}, env.configPath)
	if !errors.Is(err, folders.ErrDirectoryCreation) {
		t.Fatalf("expected ErrDirectoryCreation, got %v", err)
	}
	requireContains(t, out, "[ERROR] 2 records")
	requireDir(t, filepath.Join(base, "s02", "e001", "e001s0004"))
}

func TestGenerateWithoutCreateBase(t *testing.T) {
	env := setupCLITestEnv(t)
	content := "[folders]\ncreate_base = false\n[logging]\nlevel = \"error\"\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"generate", "--base", filepath.Join(env.dir, "absent"), env.edlPath}, env.configPath)
	if !errors.Is(err, preflight.ErrCheckFailed) {
		t.Fatalf("expected preflight failure, got %v", err)
	}
}

func TestGenerateMissingInputFailsPreflight(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.dir, "shots")

	_, _, err := runCLI(t, []string{"generate", "--base", base, filepath.Join(env.dir, "gone.edl")}, env.configPath)
	if !errors.Is(err, preflight.ErrCheckFailed) {
		t.Fatalf("expected preflight failure, got %v", err)
	}
	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Fatalf("base should not be created when inputs fail: %v", err)
	}
}
