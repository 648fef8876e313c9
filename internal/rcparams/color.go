package rcparams

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an RGBA color with components in [0, 1], or the "none" color.
// It implements image/color.Color.
type Color struct {
	R, G, B, A float64
	None       bool
}

// baseColors are matplotlib's single-letter colors.
var baseColors = map[string]Color{
	"b": {0, 0, 1, 1, false},
	"g": {0, 0.5, 0, 1, false},
	"r": {1, 0, 0, 1, false},
	"c": {0, 0.75, 0.75, 1, false},
	"m": {0.75, 0, 0.75, 1, false},
	"y": {0.75, 0.75, 0, 1, false},
	"k": {0, 0, 0, 1, false},
	"w": {1, 1, 1, 1, false},
}

// tableauColors is the default "tab10" palette, also addressed as C0..C9.
var tableauColors = []struct {
	name string
	hex  string
}{
	{"tab:blue", "#1f77b4"},
	{"tab:orange", "#ff7f0e"},
	{"tab:green", "#2ca02c"},
	{"tab:red", "#d62728"},
	{"tab:purple", "#9467bd"},
	{"tab:brown", "#8c564b"},
	{"tab:pink", "#e377c2"},
	{"tab:gray", "#7f7f7f"},
	{"tab:olive", "#bcbd22"},
	{"tab:cyan", "#17becf"},
}

// ParseColor interprets a matplotlib color specification.
func ParseColor(s string) (Color, error) {
	spec := strings.Trim(strings.TrimSpace(s), `'"`)
	lower := strings.ToLower(spec)

	switch {
	case lower == "none":
		return Color{None: true}, nil
	case len(lower) == 1:
		if c, ok := baseColors[lower]; ok {
			return c, nil
		}
	case strings.HasPrefix(lower, "tab:"):
		name := strings.ReplaceAll(lower, "grey", "gray")
		for _, t := range tableauColors {
			if t.name == name {
				return parseHex(t.hex)
			}
		}
	case len(lower) == 2 && lower[0] == 'c' && lower[1] >= '0' && lower[1] <= '9':
		return parseHex(tableauColors[lower[1]-'0'].hex)
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	}

	if isHexDigits(lower) && (len(lower) == 6 || len(lower) == 8) {
		return parseHex("#" + lower)
	}

	if rgba, ok := colornames.Map[lower]; ok {
		c, _ := colorful.MakeColor(rgba)
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}

	if level, err := strconv.ParseFloat(lower, 64); err == nil {
		if level < 0 || level > 1 || math.IsNaN(level) {
			return Color{}, fmt.Errorf("%w: gray level %q must be within 0-1", ErrInvalidColor, spec)
		}
		return Color{R: level, G: level, B: level, A: 1}, nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
}

// parseHex accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if !isHexDigits(digits) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	alpha := 1.0
	switch len(digits) {
	case 4:
		a, _ := strconv.ParseUint(digits[3:], 16, 8)
		alpha = float64(a) / 15
		digits = digits[:3]
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 255
		digits = digits[:6]
	case 3, 6:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Hex returns "#rrggbb", "#rrggbbaa" when translucent, or "none".
func (c Color) Hex() string {
	if c.None {
		return "none"
	}
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", uint8(math.Round(clamp01(c.A)*255)))
	}
	return hex
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.None {
		return 0, 0, 0, 0
	}
	alpha := clamp01(c.A)
	r = uint32(math.Round(clamp01(c.R) * alpha * 0xffff))
	g = uint32(math.Round(clamp01(c.G) * alpha * 0xffff))
	b = uint32(math.Round(clamp01(c.B) * alpha * 0xffff))
	a = uint32(math.Round(alpha * 0xffff))
	return r, g, b, a
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
