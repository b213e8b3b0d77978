package edl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"edlparser/internal/logging"
)

const maxLineBytes = 1 << 20

// DefaultExtensions lists the file extensions accepted when none are configured.
var DefaultExtensions = []string{".edl"}

// LookupEncoding resolves a configured encoding name. The empty name means
// UTF-8. UTF-8 decoding strips a leading byte order mark.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	default:
		return nil, fmt.Errorf("unsupported edl encoding %q", name)
	}
}

// Read decodes r with the configured encoding and extracts records line by
// line. The partial result is returned alongside any read error.
func (e *Extractor) Read(r io.Reader) (Result, error) {
	enc, err := LookupEncoding(e.encoding)
	if err != nil {
		return Result{}, err
	}

	res := Result{Records: make([]ClipRecord, 0)}
	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		e.consume(&res, lineNo, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// ReadFile opens path and extracts its records. Open and read failures are
// returned as *FileAccessError.
func (e *Extractor) ReadFile(path string) (Result, error) {
	if _, err := LookupEncoding(e.encoding); err != nil {
		return Result{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Result{}, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	e.logger.Debug("reading edl file", logging.String(logging.FieldFile, path), logging.String("encoding", e.encodingLabel()))
	res, err := e.Read(file)
	if err != nil {
		return res, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	e.logger.Info("edl file parsed",
		logging.String(logging.FieldFile, path),
		logging.Int("records", len(res.Records)),
		logging.Int("reels", res.Reels),
		logging.Int("filtered", res.Filtered),
		logging.Int("malformed", len(res.Malformed)),
	)
	return res, nil
}

func (e *Extractor) encodingLabel() string {
	if strings.TrimSpace(e.encoding) == "" {
		return "utf-8"
	}
	return e.encoding
}

// HasAllowedExtension reports whether path ends in one of allowed, compared
// case-insensitively. An empty list falls back to DefaultExtensions.
func HasAllowedExtension(path string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = DefaultExtensions
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	for _, candidate := range allowed {
		candidate = strings.TrimSpace(candidate)
		if !strings.HasPrefix(candidate, ".") {
			candidate = "." + candidate
		}
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}
