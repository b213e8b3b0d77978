package edl

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"edlparser/internal/logging"
)

const (
	reelPrefix = "REEL"
	clipMarker = "CLIP"

	// Token positions within the underscore-split clip name. A .mov clip
	// carries its shot number in token 4 as "<take>-<shot>.<ext>"; a .wav clip
	// carries it in token 1 as "<shot>-<rest>".
	movShotToken = 4
	wavShotToken = 1

	episodeWidth = 3
	shotWidth    = 4
)

var seasonEpisodePattern = regexp.MustCompile(`^s\d{2}e\d{2,3}$`)

type lineOutcome int

const (
	lineIgnored lineOutcome = iota
	lineFiltered
	lineMalformed
	lineRecord
)

// Extract returns the clip records found in lines, in line order. Malformed
// lines are skipped silently; use an Extractor to inspect them.
func Extract(lines []string) []ClipRecord {
	return NewExtractor().Extract(lines).Records
}

// ParseLine parses a single EDL line. ok is false when the line does not
// describe a clip. A non-nil error is always a *MalformedLineError.
func ParseLine(line string) (ClipRecord, bool, error) {
	rec, outcome, malformed := parseLine(line)
	if malformed != nil {
		return ClipRecord{}, false, malformed
	}
	return rec, outcome == lineRecord, nil
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger routes skip diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEncoding selects the text encoding used by Read and ReadFile.
func WithEncoding(name string) Option {
	return func(e *Extractor) {
		e.encoding = name
	}
}

// Extractor turns EDL text into clip records. Each call starts from an empty
// Result; callers combine results across files themselves.
type Extractor struct {
	logger   *slog.Logger
	encoding string
}

// NewExtractor builds an Extractor with the supplied options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes lines in order. Line numbers in diagnostics are the
// 1-based slice positions.
func (e *Extractor) Extract(lines []string) Result {
	res := Result{Records: make([]ClipRecord, 0, len(lines))}
	for i, line := range lines {
		e.consume(&res, i+1, line)
	}
	return res
}

func (e *Extractor) consume(res *Result, lineNo int, line string) {
	res.Lines++
	rec, outcome, malformed := parseLine(line)
	switch outcome {
	case lineIgnored:
		return
	case lineFiltered:
		res.Reels++
		res.Filtered++
		e.logger.Debug("reel line filtered",
			logging.Int("line", lineNo),
			logging.String("reason", "clip name lacks season/episode token"),
		)
	case lineMalformed:
		res.Reels++
		malformed.Line = lineNo
		res.Malformed = append(res.Malformed, malformed)
		logging.WarnWithContext(e.logger, "skipping malformed edl line", "edl_malformed_line",
			logging.Int("line", lineNo),
			logging.String("reason", malformed.Reason),
			logging.String(logging.FieldErrorHint, "clip names follow sNNeMM_<a>_<b>_<c>_<take>-<shot>.mov or sNNeMM_<shot>-<rest>.wav"),
			logging.String(logging.FieldImpact, "line omitted from results"),
		)
	case lineRecord:
		res.Reels++
		res.Records = append(res.Records, rec)
	}
}

func parseLine(line string) (ClipRecord, lineOutcome, *MalformedLineError) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, reelPrefix) {
		return ClipRecord{}, lineIgnored, nil
	}

	_, after, found := strings.Cut(trimmed, clipMarker)
	if !found {
		return ClipRecord{}, lineMalformed, &MalformedLineError{Text: trimmed, Reason: "REEL line has no CLIP marker"}
	}
	clipName := strings.TrimSpace(after)
	parts := strings.Split(clipName, "_")

	if !seasonEpisodePattern.MatchString(parts[0]) {
		return ClipRecord{}, lineFiltered, nil
	}

	season := parts[0][:3]
	episode := NormalizeEpisode(parts[0][3:])

	shot, err := shotFor(parts, episode)
	if err != nil {
		return ClipRecord{}, lineMalformed, &MalformedLineError{Text: trimmed, Reason: err.Error()}
	}

	return ClipRecord{
		ClipName: clipName,
		Shot:     shot,
		Episode:  episode,
		Season:   season,
	}, lineRecord, nil
}

// NormalizeEpisode pads a raw episode token ("e5", "e23") to an "e" plus
// three digit form. Tokens longer than three characters are returned as is.
func NormalizeEpisode(raw string) string {
	if len(raw) > episodeWidth {
		return raw
	}
	_, number, found := strings.Cut(raw, "e")
	if !found {
		return raw
	}
	return "e" + ZeroPad(number, episodeWidth)
}

func shotFor(parts []string, episode string) (string, error) {
	last := parts[len(parts)-1]
	switch {
	case strings.HasSuffix(last, ".mov"):
		if len(parts) <= movShotToken {
			return "", fmt.Errorf(".mov clip needs at least %d underscore-delimited tokens, got %d", movShotToken+1, len(parts))
		}
		token := parts[movShotToken]
		_, tail, found := strings.Cut(token, "-")
		if !found {
			return "", fmt.Errorf(".mov shot token %q has no '-' before the shot number", token)
		}
		number, _, _ := strings.Cut(tail, "-")
		number, _, _ = strings.Cut(number, ".")
		return episode + "s" + ZeroPad(number, shotWidth), nil
	case strings.HasSuffix(last, ".wav"):
		if len(parts) <= wavShotToken {
			return "", fmt.Errorf(".wav clip needs at least %d underscore-delimited tokens, got %d", wavShotToken+1, len(parts))
		}
		number, _, _ := strings.Cut(parts[wavShotToken], "-")
		return episode + "s" + ZeroPad(number, shotWidth), nil
	}
	return "", nil
}

// ZeroPad left-fills value with zeros up to width characters, keeping a
// leading sign in front. Values already at or beyond width are unchanged.
func ZeroPad(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	pad := strings.Repeat("0", width-n)
	if value != "" && (value[0] == '+' || value[0] == '-') {
		return value[:1] + pad + value[1:]
	}
	return pad + value
}
