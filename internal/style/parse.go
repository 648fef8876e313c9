package style

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxLineLength bounds a single rc line.
const maxLineLength = 1 << 20

const utf8BOM = "\ufeff"

// DuplicatePolicy decides what happens when a key appears more than once.
type DuplicatePolicy int

const (
	// DuplicatesLastWins keeps the last value at the first key position.
	DuplicatesLastWins DuplicatePolicy = iota
	// DuplicatesReject fails the load with [ErrDuplicateKey].
	DuplicatesReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesLastWins:
		return "last-wins"
	case DuplicatesReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses "last-wins" (or "") and "reject".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last-wins", "last_wins", "lastwins":
		return DuplicatesLastWins, nil
	case "reject", "error":
		return DuplicatesReject, nil
	default:
		return DuplicatesLastWins, fmt.Errorf("%w: %q", ErrUnknownDuplicatePolicy, s)
	}
}

// Option configures parsing.
type Option func(*parseOptions)

type parseOptions struct {
	source     string
	duplicates DuplicatePolicy
}

// WithSource names the input in [ParseError] messages.
func WithSource(name string) Option {
	return func(o *parseOptions) {
		o.source = name
	}
}

// WithDuplicates sets the duplicate key policy. Default is last wins.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *parseOptions) {
		o.duplicates = p
	}
}

func applyOptions(opts []Option) *parseOptions {
	o := &parseOptions{duplicates: DuplicatesLastWins}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads and parses the style file at path. The path is used as the
// error source unless overridden with [WithSource].
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening style file: %w", err)
	}
	defer f.Close()

	return Parse(f, append([]Option{WithSource(path)}, opts...)...)
}

// ParseString parses rc text held in a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseBytes parses rc text held in a byte slice.
func ParseBytes(b []byte, opts ...Option) (*Document, error) {
	return Parse(bytes.NewReader(b), opts...)
}

// Parse reads rc text from r. Comment and blank lines are skipped. The first
// malformed line aborts parsing with a *[ParseError].
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	o := applyOptions(opts)
	doc := newDocument(32)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, utf8BOM)
		}

		s, ok, err := parseLine(raw)
		if err != nil {
			return nil, &ParseError{Source: o.source, Line: lineNo, Content: raw, Err: err}
		}
		if !ok {
			continue
		}

		if o.duplicates == DuplicatesReject && doc.Has(s.Key) {
			return nil, &ParseError{Source: o.source, Line: lineNo, Content: raw, Err: ErrDuplicateKey}
		}
		s.Line = lineNo
		doc.set(s)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Source: o.source, Line: lineNo + 1, Err: ErrLineTooLong}
		}
		return nil, fmt.Errorf("error reading style: %w", err)
	}

	return doc, nil
}

// parseLine returns ok=false for comment and blank lines.
func parseLine(raw string) (Setting, bool, error) {
	if !utf8.ValidString(raw) {
		return Setting{}, false, ErrInvalidEncoding
	}

	line := strings.TrimSpace(raw)
	if line == "" || line[0] == '#' {
		return Setting{}, false, nil
	}

	key, value, found := strings.Cut(line, ":")
	if !found {
		return Setting{}, false, ErrMissingSeparator
	}

	key = strings.TrimSpace(key)
	if !ValidKey(key) {
		return Setting{}, false, ErrInvalidKey
	}

	return Setting{Key: key, Value: stripComment(strings.TrimSpace(value))}, true, nil
}
