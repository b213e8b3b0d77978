package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleEDL = `TITLE: EP105 CONFORM
FCM: NON-DROP FRAME

001  AX       V     C        00:00:00:00 00:00:04:00 01:00:00:00 01:00:04:00
REEL AX CLIP s01e5_show_ep_desc_unused-7.mov
002  AX       A     C        00:00:00:00 00:00:04:00 01:00:00:00 01:00:04:00
REEL AX CLIP s01e5_12-dialogue.wav
REEL AX CLIP title_card_v2.mov
REEL AX CLIP s01e5_short-1.mov
`

type cliTestEnv struct {
	dir        string
	configPath string
	edlPath    string
}

// setupCLITestEnv isolates HOME and the working directory and writes a
// config that keeps log output to errors only.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("EDLPARSER_BASE_DIR", "")
	t.Chdir(dir)

	configPath := filepath.Join(dir, "config.toml")
	content := "[logging]\nlevel = \"error\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	edlPath := filepath.Join(dir, "ep105.edl")
	if err := os.WriteFile(edlPath, []byte(sampleEDL), 0o644); err != nil {
		t.Fatalf("write edl: %v", err)
	}

	return &cliTestEnv{dir: dir, configPath: configPath, edlPath: edlPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}
