package edl_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edlparser/internal/edl"
)

const sampleEDL = `TITLE: SHOW S01 EP005
FCM: NON-DROP FRAME

001  AX       V     C        01:00:00:00 01:00:04:12 00:00:00:00 00:00:04:12
REEL 001 CLIP s01e005_show_ep_desc_unused-0007.mov
002  AX       A     C        01:00:00:00 01:00:04:12 00:00:00:00 00:00:04:12
REEL 002 CLIP s01e005_0007-dialogue.wav
REEL 003 V C
REEL 004 CLIP graphics_lowerthird.mov
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFileExtractsRecords(t *testing.T) {
	path := writeFile(t, "ep005.edl", []byte(sampleEDL))

	res, err := edl.NewExtractor().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(res.Records), res.Records)
	}
	if res.Records[0].Shot != "e005s0007" || res.Records[1].Shot != "e005s0007" {
		t.Fatalf("unexpected shots: %+v", res.Records)
	}
	if len(res.Malformed) != 1 || res.Malformed[0].Line != 8 {
		t.Fatalf("expected malformed line 8, got %+v", res.Malformed)
	}
	if res.Filtered != 1 {
		t.Fatalf("filtered = %d, want 1", res.Filtered)
	}
	if res.Lines != 9 {
		t.Fatalf("lines = %d, want 9", res.Lines)
	}
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.edl")
	_, err := edl.NewExtractor().ReadFile(path)
	if !errors.Is(err, edl.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped fs.ErrNotExist, got %v", err)
	}
	var accessErr *edl.FileAccessError
	if !errors.As(err, &accessErr) || accessErr.Op != "open" || accessErr.Path != path {
		t.Fatalf("unexpected access error: %#v", err)
	}
}

func TestReadFileDirectoryIsReadError(t *testing.T) {
	dir := t.TempDir()
	_, err := edl.NewExtractor().ReadFile(dir)
	if !errors.Is(err, edl.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestReadStripsUTF8BOM(t *testing.T) {
	data := "\ufeffREEL 001 CLIP s01e005_show_ep_desc_unused-0007.mov\n"
	res, err := edl.NewExtractor().Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected BOM-prefixed REEL line to parse, got %+v", res)
	}
}

func TestReadLatin1(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1 and invalid as UTF-8.
	data := []byte("REEL 001 CLIP s01e005_caf\xe9_ep_desc_take-0012.mov\r\n")
	res, err := edl.NewExtractor(edl.WithEncoding("iso-8859-1")).Read(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected one record, got %+v", res)
	}
	if got := res.Records[0].ClipName; got != "s01e005_café_ep_desc_take-0012.mov" {
		t.Fatalf("unexpected clip name %q", got)
	}
	if got := res.Records[0].Shot; got != "e005s0012" {
		t.Fatalf("unexpected shot %q", got)
	}
}

func TestReadUTF16(t *testing.T) {
	text := "REEL 001 CLIP s02e12_0033-x.wav\n"
	data := []byte{0xFF, 0xFE}
	for _, r := range text {
		data = append(data, byte(r), 0)
	}
	res, err := edl.NewExtractor(edl.WithEncoding("utf-16")).Read(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Shot != "e012s0033" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReadUnknownEncoding(t *testing.T) {
	_, err := edl.NewExtractor(edl.WithEncoding("ebcdic")).Read(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
	if errors.Is(err, edl.ErrFileAccess) {
		t.Fatalf("encoding errors are not file access errors: %v", err)
	}
}

func TestHasAllowedExtension(t *testing.T) {
	cases := []struct {
		path    string
		allowed []string
		want    bool
	}{
		{"cut.edl", nil, true},
		{"/tmp/CUT.EDL", nil, true},
		{"cut.txt", nil, false},
		{"edl", nil, false},
		{"cut.txt", []string{".edl", "txt"}, true},
		{"cut.edl", []string{".txt"}, false},
	}
	for _, tc := range cases {
		if got := edl.HasAllowedExtension(tc.path, tc.allowed); got != tc.want {
			t.Fatalf("HasAllowedExtension(%q, %v) = %v, want %v", tc.path, tc.allowed, got, tc.want)
		}
	}
}
