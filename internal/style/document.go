package style

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Document is an ordered, immutable set of settings. Keys keep the position
// of their first occurrence; a later duplicate replaces the value in place.
//
// The zero value and a nil *Document are valid empty documents.
type Document struct {
	settings []Setting
	index    map[string]int
}

func newDocument(capacity int) *Document {
	return &Document{
		settings: make([]Setting, 0, capacity),
		index:    make(map[string]int, capacity),
	}
}

// set inserts or replaces s. Only used while a document is being built.
func (d *Document) set(s Setting) {
	if i, ok := d.index[s.Key]; ok {
		d.settings[i] = s
		return
	}
	d.index[s.Key] = len(d.settings)
	d.settings = append(d.settings, s)
}

// New builds a document from settings in code. Keys must satisfy [ValidKey]
// and values must fit on one rc line; the last of duplicate keys wins.
func New(settings ...Setting) (*Document, error) {
	doc := newDocument(len(settings))
	for _, s := range settings {
		if !ValidKey(s.Key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s.Key)
		}
		value := strings.TrimSpace(s.Value)
		if strings.ContainsAny(value, "\r\n") || stripComment(value) != value {
			return nil, fmt.Errorf("%w for %s: %q", ErrInvalidValue, s.Key, s.Value)
		}
		doc.set(Setting{Key: s.Key, Value: value, Line: s.Line})
	}
	return doc, nil
}

// MustNew is like [New] but panics on error. Intended for literals in code
// and tests.
func MustNew(settings ...Setting) *Document {
	doc, err := New(settings...)
	if err != nil {
		panic(err)
	}
	return doc
}

// Len returns the number of distinct keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.settings)
}

// Lookup returns the raw value for key.
func (d *Document) Lookup(key string) (string, bool) {
	s, ok := d.Setting(key)
	return s.Value, ok
}

// Get returns the raw value for key, or "" if it is absent.
func (d *Document) Get(key string) string {
	v, _ := d.Lookup(key)
	return v
}

// Setting returns the full setting for key, including its source line.
func (d *Document) Setting(key string) (Setting, bool) {
	if d == nil {
		return Setting{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Setting{}, false
	}
	return d.settings[i], true
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.Setting(key)
	return ok
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.settings))
	for i, s := range d.settings {
		keys[i] = s.Key
	}
	return keys
}

// Settings returns a copy of the settings in document order.
func (d *Document) Settings() []Setting {
	if d == nil {
		return nil
	}
	return slices.Clone(d.settings)
}

// Map returns the settings as a fresh key → value map.
func (d *Document) Map() map[string]string {
	m := make(map[string]string, d.Len())
	if d == nil {
		return m
	}
	for _, s := range d.settings {
		m[s.Key] = s.Value
	}
	return m
}

// Namespaces returns the sorted distinct namespaces of all keys, e.g.
// "axes", "axes.formatter", "legend".
func (d *Document) Namespaces() []string {
	return d.distinct(Setting.Namespace)
}

// Groups returns the sorted distinct first key segments.
func (d *Document) Groups() []string {
	return d.distinct(Setting.Group)
}

func (d *Document) distinct(fn func(Setting) string) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range d.settings {
		v := fn(s)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Namespace returns the sub-document of keys equal to prefix or under
// "prefix.". Keys and lines are kept as-is.
func (d *Document) Namespace(prefix string) *Document {
	sub := newDocument(0)
	if d == nil {
		return sub
	}
	for _, s := range d.settings {
		if s.Key == prefix || strings.HasPrefix(s.Key, prefix+".") {
			sub.set(s)
		}
	}
	return sub
}

// Find returns the keys, in document order, containing every item as a
// substring.
func (d *Document) Find(items ...string) []string {
	keys := make([]string, 0)
	for _, k := range d.Keys() {
		match := true
		for _, item := range items {
			if !strings.Contains(k, item) {
				match = false
				break
			}
		}
		if match {
			keys = append(keys, k)
		}
	}
	return keys
}

// ReFind returns the keys, in document order, matched by the regular
// expression pattern.
func (d *Document) ReFind(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("error compiling key pattern: %w", err)
	}
	keys := make([]string, 0)
	for _, k := range d.Keys() {
		if re.MatchString(k) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Missing returns the given keys that are not present, in argument order.
func (d *Document) Missing(keys ...string) []string {
	var missing []string
	for _, k := range keys {
		if !d.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Equal reports whether both documents map the same keys to the same
// values. Order and source lines are ignored.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	if d == nil {
		return true
	}
	for _, s := range d.settings {
		v, ok := other.Lookup(s.Key)
		if !ok || v != s.Value {
			return false
		}
	}
	return true
}

// Merge stacks documents: settings of later documents override earlier
// ones. Keys keep their first-seen position. Nil documents are skipped.
func Merge(docs ...*Document) *Document {
	size := 0
	for _, doc := range docs {
		size += doc.Len()
	}
	merged := newDocument(size)
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, s := range doc.settings {
			merged.set(s)
		}
	}
	return merged
}
