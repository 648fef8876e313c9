package rcparams

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind names the type a setting value is interpreted as.
type Kind string

const (
	KindBool      Kind = "bool"
	KindFloat     Kind = "float"
	KindInt       Kind = "int"
	KindIntPair   Kind = "int pair"
	KindFloatPair Kind = "float pair"
	KindColor     Kind = "color"
	KindCycler    Kind = "cycler"
	KindEnum      Kind = "enum"
	KindFontSize  Kind = "font size"
	KindFontList  Kind = "font list"
	KindString    Kind = "string"
)

// ParseBool accepts matplotlib's boolean spellings, case-insensitively:
// t, y, yes, on, true, 1 and f, n, no, off, false, 0.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "y", "yes", "on", "true", "1":
		return true, nil
	case "f", "n", "no", "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a boolean", s)
	}
}

// ParseFloat parses a finite float.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrOutOfRange, s)
	}
	return f, nil
}

// ParseInt parses a base-10 integer. Float spellings of whole numbers such
// as "6.0" are accepted.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := ParseFloat(s)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

func splitPair(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	s = strings.TrimPrefix(strings.TrimSuffix(s, "]"), "[")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%q is not a pair of two comma-separated values", s)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// ParseIntPair parses "a, b" into two integers.
func ParseIntPair(s string) ([2]int, error) {
	a, b, err := splitPair(s)
	if err != nil {
		return [2]int{}, err
	}
	x, err := ParseInt(a)
	if err != nil {
		return [2]int{}, err
	}
	y, err := ParseInt(b)
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{x, y}, nil
}

// ParseFloatPair parses "a, b" into two floats.
func ParseFloatPair(s string) ([2]float64, error) {
	a, b, err := splitPair(s)
	if err != nil {
		return [2]float64{}, err
	}
	x, err := ParseFloat(a)
	if err != nil {
		return [2]float64{}, err
	}
	y, err := ParseFloat(b)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{x, y}, nil
}

// ParseEnum matches s against allowed, exactly first and then
// case-insensitively, and returns the allowed spelling.
func ParseEnum(s string, allowed ...string) (string, error) {
	s = strings.TrimSpace(s)
	if slices.Contains(allowed, s) {
		return s, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrNotAllowed, s, strings.Join(allowed, ", "))
}

// ParseFontList splits a comma-separated font family list. Surrounding
// quotes on a name are removed and empty entries dropped.
func ParseFontList(s string) ([]string, error) {
	fonts := make([]string, 0)
	for _, f := range strings.Split(s, ",") {
		f = strings.Trim(strings.TrimSpace(f), `'"`)
		if f != "" {
			fonts = append(fonts, f)
		}
	}
	return fonts, nil
}

// fontScalings are matplotlib's relative font size names.
var fontScalings = map[string]float64{
	"xx-small": 0.579,
	"x-small":  0.694,
	"small":    0.833,
	"medium":   1.0,
	"large":    1.200,
	"x-large":  1.440,
	"xx-large": 1.728,
	"larger":   1.2,
	"smaller":  0.833,
}

// FontSize is either an absolute size in points or a size name relative to
// the base font size.
type FontSize struct {
	Name   string
	Points float64
}

// ParseFontSize accepts a size name such as "small" or a positive number.
func ParseFontSize(s string) (FontSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := fontScalings[s]; ok {
		return FontSize{Name: s}, nil
	}
	f, err := ParseFloat(s)
	if err != nil {
		names := make([]string, 0, len(fontScalings))
		for n := range fontScalings {
			names = append(names, n)
		}
		slices.Sort(names)
		return FontSize{}, fmt.Errorf("%w: %q is neither a number nor one of %s", ErrNotAllowed, s, strings.Join(names, ", "))
	}
	if f <= 0 {
		return FontSize{}, fmt.Errorf("%w: font size must be positive", ErrOutOfRange)
	}
	return FontSize{Points: f}, nil
}

// Resolve returns the size in points for the given base font size.
func (f FontSize) Resolve(base float64) float64 {
	if f.Name != "" {
		return base * fontScalings[f.Name]
	}
	return f.Points
}

func (f FontSize) String() string {
	if f.Name != "" {
		return f.Name
	}
	return strconv.FormatFloat(f.Points, 'g', -1, 64)
}

func (f FontSize) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FontSize) UnmarshalText(b []byte) error {
	v, err := ParseFontSize(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
