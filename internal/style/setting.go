package style

import (
	"strings"
)

// Setting is a single named visual default.
type Setting struct {
	// Key is the dotted setting name, e.g. "legend.frameon".
	Key string `json:"key" yaml:"key"`
	// Value is the raw, trimmed right-hand side of the line.
	Value string `json:"value" yaml:"value"`
	// Line is the 1-based source line, or 0 for settings built in code.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// Namespace returns the key without its last segment ("axes.formatter" for
// "axes.formatter.limits"). Single-segment keys have an empty namespace.
func (s Setting) Namespace() string {
	return namespaceOf(s.Key)
}

// Group returns the first key segment ("axes" for "axes.formatter.limits").
func (s Setting) Group() string {
	return groupOf(s.Key)
}

// String renders the setting as an rc line without the trailing newline.
func (s Setting) String() string {
	return s.Key + ": " + s.Value
}

func namespaceOf(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return ""
}

func groupOf(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}

// ValidKey reports whether key is a dotted identifier: one or more segments
// joined by '.', each starting with a letter or '_' and continuing with
// letters, digits, '_' or '-' (matplotlib has keys like "font.sans-serif").
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	for _, seg := range strings.Split(key, ".") {
		if !validSegment(seg) {
			return false
		}
	}
	return true
}

func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '_' || isLetter(c):
		case i > 0 && (isDigit(c) || c == '-'):
		default:
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// stripComment cuts a trailing "# ..." comment from a value. A '#' starts a
// comment only outside quotes and after whitespace, so "#b0b0b0" and
// "cycler('color', ['#fff'])" survive.
func stripComment(value string) string {
	var quote byte
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#' && i > 0 && (value[i-1] == ' ' || value[i-1] == '\t'):
			return strings.TrimSpace(value[:i])
		}
	}
	return value
}
