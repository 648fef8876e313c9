package rcparams

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CycleProperty is one cycled property and its values in order.
type CycleProperty struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Cycle is a property cycle: the i-th plotted series gets the i-th value
// (modulo length) of every property. All properties have equal length.
type Cycle struct {
	Properties []CycleProperty `json:"properties"`
}

// cyclerAliases maps matplotlib's short property names to full ones.
var cyclerAliases = map[string]string{
	"c":   "color",
	"lw":  "linewidth",
	"ls":  "linestyle",
	"ec":  "edgecolor",
	"fc":  "facecolor",
	"ms":  "markersize",
	"mew": "markeredgewidth",
	"mec": "markeredgecolor",
	"mfc": "markerfacecolor",
}

// colorProperties hold values that must be valid colors.
var colorProperties = map[string]bool{
	"color":           true,
	"edgecolor":       true,
	"facecolor":       true,
	"markeredgecolor": true,
	"markerfacecolor": true,
}

// Len returns the cycle length, 0 for an empty cycle.
func (c Cycle) Len() int {
	if len(c.Properties) == 0 {
		return 0
	}
	return len(c.Properties[0].Values)
}

// Keys returns the property names in order.
func (c Cycle) Keys() []string {
	keys := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		keys[i] = p.Name
	}
	return keys
}

// Values returns the values of the named property.
func (c Cycle) Values(name string) ([]string, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p.Values, true
		}
	}
	return nil, false
}

// At returns the property values for the i-th series, wrapping around.
func (c Cycle) At(i int) map[string]string {
	n := c.Len()
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	out := make(map[string]string, len(c.Properties))
	for _, p := range c.Properties {
		out[p.Name] = p.Values[i]
	}
	return out
}

// Colors parses the "color" property values.
func (c Cycle) Colors() ([]Color, error) {
	values, ok := c.Values("color")
	if !ok {
		return nil, nil
	}
	colors := make([]Color, 0, len(values))
	for _, v := range values {
		col, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Clone returns a deep copy.
func (c Cycle) Clone() Cycle {
	props := make([]CycleProperty, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = CycleProperty{Name: p.Name, Values: slices.Clone(p.Values)}
	}
	return Cycle{Properties: props}
}

// cyclerQuoter escapes a value for a single-quoted cycler string.
var cyclerQuoter = strings.NewReplacer(`\`, `\\`, "'", `\'`)

// String renders the cycle as a cycler expression that [ParseCycler]
// accepts.
func (c Cycle) String() string {
	terms := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		values := make([]string, len(p.Values))
		for j, v := range p.Values {
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				values[j] = v
			} else {
				values[j] = "'" + cyclerQuoter.Replace(v) + "'"
			}
		}
		terms[i] = fmt.Sprintf("cycler('%s', [%s])", p.Name, strings.Join(values, ", "))
	}
	return strings.Join(terms, " + ")
}

// add zips two cycles of equal length with disjoint properties.
func (c Cycle) add(other Cycle) (Cycle, error) {
	if len(c.Properties) == 0 {
		return other, nil
	}
	if c.Len() != other.Len() {
		return Cycle{}, fmt.Errorf("%w: cannot add cycles of length %d and %d", ErrInvalidCycler, c.Len(), other.Len())
	}
	for _, p := range other.Properties {
		if _, dup := c.Values(p.Name); dup {
			return Cycle{}, fmt.Errorf("%w: property %q cycled twice", ErrInvalidCycler, p.Name)
		}
	}
	return Cycle{Properties: append(slices.Clone(c.Properties), other.Properties...)}, nil
}

// ParseCycler parses a cycler expression:
//
//	cycler('color', ['k', 'b'])
//	cycler(color=['k', 'b'], linestyle=['-', '--'])
//	cycler('color', 'kb') + cycler('lw', [1, 2])
//
// A string in place of a list cycles over its characters. Color-valued
// properties are checked with [ParseColor].
func ParseCycler(s string) (Cycle, error) {
	p := &cyclerParser{lex: cyclerLexer{src: s}}
	if err := p.advance(); err != nil {
		return Cycle{}, err
	}

	c, err := p.parseTerm()
	if err != nil {
		return Cycle{}, err
	}
	for p.tok.kind == tokPlus {
		if err := p.advance(); err != nil {
			return Cycle{}, err
		}
		next, err := p.parseTerm()
		if err != nil {
			return Cycle{}, err
		}
		if c, err = c.add(next); err != nil {
			return Cycle{}, err
		}
	}
	if p.tok.kind == tokStar {
		return Cycle{}, fmt.Errorf("%w: cycle products are not supported", ErrInvalidCycler)
	}
	if p.tok.kind != tokEOF {
		return Cycle{}, p.unexpected("end of expression")
	}

	for _, prop := range c.Properties {
		if !colorProperties[prop.Name] {
			continue
		}
		for _, v := range prop.Values {
			if _, err := ParseColor(v); err != nil {
				return Cycle{}, fmt.Errorf("%w: property %s: %w", ErrInvalidCycler, prop.Name, err)
			}
		}
	}
	return c, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokEquals
	tokPlus
	tokStar
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var singleCharTokens = map[byte]tokenKind{
	'(': tokLParen, ')': tokRParen, '[': tokLBracket, ']': tokRBracket,
	',': tokComma, '=': tokEquals, '+': tokPlus, '*': tokStar,
}

type cyclerLexer struct {
	src string
	pos int
}

func (l *cyclerLexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '\'' || c == '"':
		return l.quoted(c)
	case isDigit(c) || c == '.' || ((c == '-' || c == '+') && l.pos+1 < len(l.src) && (isDigit(l.src[l.pos+1]) || l.src[l.pos+1] == '.')):
		if c == '+' && !l.afterSeparator() {
			break
		}
		l.pos++
		for l.pos < len(l.src) && strings.IndexByte("0123456789.eE+-", l.src[l.pos]) >= 0 {
			if (l.src[l.pos] == '+' || l.src[l.pos] == '-') && l.src[l.pos-1] != 'e' && l.src[l.pos-1] != 'E' {
				break
			}
			l.pos++
		}
		text := l.src[start:l.pos]
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return token{}, fmt.Errorf("%w: bad number %q at %d", ErrInvalidCycler, text, start)
		}
		return token{kind: tokNumber, text: text, pos: start}, nil
	}

	if kind, ok := singleCharTokens[c]; ok {
		l.pos++
		return token{kind: kind, text: string(c), pos: start}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	if r == '_' || unicode.IsLetter(r) {
		for l.pos < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			l.pos += size
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	}

	return token{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidCycler, r, start)
}

// afterSeparator reports whether a '+' at pos is a sign, not an operator.
func (l *cyclerLexer) afterSeparator() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch l.src[i] {
		case ' ', '\t':
			continue
		case '[', '(', ',', '=':
			return true
		default:
			return false
		}
	}
	return true
}

func (l *cyclerLexer) quoted(q byte) (token, error) {
	start := l.pos
	l.pos++
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\' && l.pos+1 < len(l.src):
			b.WriteByte(l.src[l.pos+1])
			l.pos += 2
		case c == q:
			l.pos++
			return token{kind: tokString, text: b.String(), pos: start}, nil
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return token{}, fmt.Errorf("%w: unterminated string at %d", ErrInvalidCycler, start)
}

type cyclerParser struct {
	lex cyclerLexer
	tok token
}

func (p *cyclerParser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *cyclerParser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.unexpected(what)
	}
	tok := p.tok
	return tok, p.advance()
}

func (p *cyclerParser) unexpected(want string) error {
	got := p.tok.text
	if p.tok.kind == tokEOF {
		got = "end of expression"
	}
	return fmt.Errorf("%w: expected %s, got %q at %d", ErrInvalidCycler, want, got, p.tok.pos)
}

// parseTerm parses one cycler(...) call.
func (p *cyclerParser) parseTerm() (Cycle, error) {
	if p.tok.kind != tokIdent || p.tok.text != "cycler" {
		return Cycle{}, p.unexpected("cycler(")
	}
	if err := p.advance(); err != nil {
		return Cycle{}, err
	}
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return Cycle{}, err
	}

	var c Cycle
	if p.tok.kind == tokString {
		name := normalizeProperty(p.tok.text)
		if err := p.advance(); err != nil {
			return Cycle{}, err
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return Cycle{}, err
		}
		values, err := p.parseValues()
		if err != nil {
			return Cycle{}, err
		}
		c = Cycle{Properties: []CycleProperty{{Name: name, Values: values}}}
	} else {
		for p.tok.kind == tokIdent {
			name := normalizeProperty(p.tok.text)
			if err := p.advance(); err != nil {
				return Cycle{}, err
			}
			if _, err := p.expect(tokEquals, "'='"); err != nil {
				return Cycle{}, err
			}
			values, err := p.parseValues()
			if err != nil {
				return Cycle{}, err
			}
			next := Cycle{Properties: []CycleProperty{{Name: name, Values: values}}}
			if c, err = c.add(next); err != nil {
				return Cycle{}, err
			}
			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return Cycle{}, err
			}
		}
		if len(c.Properties) == 0 {
			return Cycle{}, p.unexpected("property name")
		}
	}

	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return Cycle{}, err
	}
	return c, nil
}

// parseValues parses a list, a tuple, or a string of single characters.
func (p *cyclerParser) parseValues() ([]string, error) {
	if p.tok.kind == tokString {
		values := make([]string, 0, len(p.tok.text))
		for _, r := range p.tok.text {
			values = append(values, string(r))
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: empty value list", ErrInvalidCycler)
		}
		return values, p.advance()
	}

	closing := tokRBracket
	switch p.tok.kind {
	case tokLBracket:
	case tokLParen:
		closing = tokRParen
	default:
		return nil, p.unexpected("list of values")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	values := make([]string, 0)
	for p.tok.kind != closing {
		switch p.tok.kind {
		case tokString, tokNumber, tokIdent:
			values = append(values, p.tok.text)
		default:
			return nil, p.unexpected("value")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.tok.kind != closing {
			return nil, p.unexpected("',' or end of list")
		}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty value list", ErrInvalidCycler)
	}
	return values, nil
}

func normalizeProperty(name string) string {
	if full, ok := cyclerAliases[name]; ok {
		return full
	}
	return name
}
