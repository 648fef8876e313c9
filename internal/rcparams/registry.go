package rcparams

import (
	"fmt"
	"slices"
	"strconv"
)

type param struct {
	kind Kind
	set  func(p *Params, value string) error
}

var (
	legendLocations = []string{
		"best", "upper right", "upper left", "lower left", "lower right", "right",
		"center left", "center right", "lower center", "upper center", "center",
	}
	lineStyles   = []string{"-", "--", "-.", ":", "solid", "dashed", "dashdot", "dotted", "None", "none", " ", ""}
	fontWeights  = []string{"ultralight", "light", "normal", "regular", "book", "medium", "roman", "semibold", "demibold", "demi", "bold", "heavy", "extra bold", "black"}
	tickDirs     = []string{"in", "out", "inout"}
	lineMarkers  = []string{"None", "none", "", ".", ",", "o", "v", "^", "<", ">", "1", "2", "3", "4", "8", "s", "p", "P", "*", "h", "H", "+", "x", "X", "D", "d", "|", "_"}
	nonNegative  = func(f float64) bool { return f >= 0 }
	positive     = func(f float64) bool { return f > 0 }
	unitInterval = func(f float64) bool { return f >= 0 && f <= 1 }
)

// registry maps every recognized key to its interpretation.
var registry = map[string]param{
	"figure.figsize": floatPairParam(func(p *Params) *[2]float64 { return &p.Figure.Size }),
	"figure.dpi":     floatParam(func(p *Params) *float64 { return &p.Figure.DPI }, positive),

	"axes.prop_cycle":             cyclerParam(func(p *Params) *Cycle { return &p.Axes.PropCycle }),
	"axes.grid":                   boolParam(func(p *Params) *bool { return &p.Axes.Grid }),
	"axes.formatter.limits":       intPairParam(func(p *Params) *[2]int { return &p.Axes.FormatterLimits }),
	"axes.formatter.use_mathtext": boolParam(func(p *Params) *bool { return &p.Axes.FormatterUseMathText }),
	"axes.facecolor":              colorParam(func(p *Params) *Color { return &p.Axes.FaceColor }),
	"axes.edgecolor":              colorParam(func(p *Params) *Color { return &p.Axes.EdgeColor }),
	"axes.linewidth":              floatParam(func(p *Params) *float64 { return &p.Axes.LineWidth }, nonNegative),
	"axes.labelsize":              fontSizeParam(func(p *Params) *FontSize { return &p.Axes.LabelSize }),
	"axes.titlesize":              fontSizeParam(func(p *Params) *FontSize { return &p.Axes.TitleSize }),

	"grid.color":     colorParam(func(p *Params) *Color { return &p.Grid.Color }),
	"grid.linestyle": enumParam(func(p *Params) *string { return &p.Grid.LineStyle }, lineStyles),
	"grid.linewidth": floatParam(func(p *Params) *float64 { return &p.Grid.LineWidth }, nonNegative),
	"grid.alpha":     floatParam(func(p *Params) *float64 { return &p.Grid.Alpha }, unitInterval),

	"lines.linewidth":       floatParam(func(p *Params) *float64 { return &p.Lines.LineWidth }, nonNegative),
	"lines.linestyle":       enumParam(func(p *Params) *string { return &p.Lines.LineStyle }, lineStyles),
	"lines.marker":          enumParam(func(p *Params) *string { return &p.Lines.Marker }, lineMarkers),
	"lines.markersize":      floatParam(func(p *Params) *float64 { return &p.Lines.MarkerSize }, nonNegative),
	"lines.markeredgewidth": floatParam(func(p *Params) *float64 { return &p.Lines.MarkerEdgeWidth }, nonNegative),

	"legend.loc":        {kind: KindEnum, set: setLegendLoc},
	"legend.frameon":    boolParam(func(p *Params) *bool { return &p.Legend.FrameOn }),
	"legend.fancybox":   boolParam(func(p *Params) *bool { return &p.Legend.FancyBox }),
	"legend.shadow":     boolParam(func(p *Params) *bool { return &p.Legend.Shadow }),
	"legend.numpoints":  intParam(func(p *Params) *int { return &p.Legend.NumPoints }, 1),
	"legend.fontsize":   fontSizeParam(func(p *Params) *FontSize { return &p.Legend.FontSize }),
	"legend.framealpha": floatParam(func(p *Params) *float64 { return &p.Legend.FrameAlpha }, unitInterval),

	"font.family":     fontListParam(func(p *Params) *[]string { return &p.Font.Family }),
	"font.size":       floatParam(func(p *Params) *float64 { return &p.Font.Size }, positive),
	"font.weight":     {kind: KindEnum, set: setFontWeight},
	"font.serif":      fontListParam(func(p *Params) *[]string { return &p.Font.Serif }),
	"font.sans-serif": fontListParam(func(p *Params) *[]string { return &p.Font.SansSerif }),
	"font.monospace":  fontListParam(func(p *Params) *[]string { return &p.Font.Monospace }),

	"text.usetex": boolParam(func(p *Params) *bool { return &p.Text.UseTeX }),
	"text.color":  colorParam(func(p *Params) *Color { return &p.Text.Color }),

	"xtick.major.pad":  floatParam(func(p *Params) *float64 { return &p.XTick.MajorPad }, nil),
	"xtick.minor.pad":  floatParam(func(p *Params) *float64 { return &p.XTick.MinorPad }, nil),
	"xtick.major.size": floatParam(func(p *Params) *float64 { return &p.XTick.MajorSize }, nonNegative),
	"xtick.minor.size": floatParam(func(p *Params) *float64 { return &p.XTick.MinorSize }, nonNegative),
	"xtick.direction":  enumParam(func(p *Params) *string { return &p.XTick.Direction }, tickDirs),
	"xtick.labelsize":  fontSizeParam(func(p *Params) *FontSize { return &p.XTick.LabelSize }),

	"ytick.major.pad":  floatParam(func(p *Params) *float64 { return &p.YTick.MajorPad }, nil),
	"ytick.minor.pad":  floatParam(func(p *Params) *float64 { return &p.YTick.MinorPad }, nil),
	"ytick.major.size": floatParam(func(p *Params) *float64 { return &p.YTick.MajorSize }, nonNegative),
	"ytick.minor.size": floatParam(func(p *Params) *float64 { return &p.YTick.MinorSize }, nonNegative),
	"ytick.direction":  enumParam(func(p *Params) *string { return &p.YTick.Direction }, tickDirs),
	"ytick.labelsize":  fontSizeParam(func(p *Params) *FontSize { return &p.YTick.LabelSize }),
}

// Keys returns the sorted recognized keys.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// KindOf returns the value kind expected for key.
func KindOf(key string) (Kind, bool) {
	p, ok := registry[key]
	return p.kind, ok
}

func boolParam(field func(*Params) *bool) param {
	return param{kind: KindBool, set: func(p *Params, v string) error {
		b, err := ParseBool(v)
		if err != nil {
			return err
		}
		*field(p) = b
		return nil
	}}
}

func floatParam(field func(*Params) *float64, valid func(float64) bool) param {
	return param{kind: KindFloat, set: func(p *Params, v string) error {
		f, err := ParseFloat(v)
		if err != nil {
			return err
		}
		if valid != nil && !valid(f) {
			return fmt.Errorf("%w: %s", ErrOutOfRange, strconv.FormatFloat(f, 'g', -1, 64))
		}
		*field(p) = f
		return nil
	}}
}

func intParam(field func(*Params) *int, minimum int) param {
	return param{kind: KindInt, set: func(p *Params, v string) error {
		i, err := ParseInt(v)
		if err != nil {
			return err
		}
		if i < minimum {
			return fmt.Errorf("%w: %d is below %d", ErrOutOfRange, i, minimum)
		}
		*field(p) = i
		return nil
	}}
}

func intPairParam(field func(*Params) *[2]int) param {
	return param{kind: KindIntPair, set: func(p *Params, v string) error {
		pair, err := ParseIntPair(v)
		if err != nil {
			return err
		}
		*field(p) = pair
		return nil
	}}
}

func floatPairParam(field func(*Params) *[2]float64) param {
	return param{kind: KindFloatPair, set: func(p *Params, v string) error {
		pair, err := ParseFloatPair(v)
		if err != nil {
			return err
		}
		*field(p) = pair
		return nil
	}}
}

func colorParam(field func(*Params) *Color) param {
	return param{kind: KindColor, set: func(p *Params, v string) error {
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		*field(p) = c
		return nil
	}}
}

func cyclerParam(field func(*Params) *Cycle) param {
	return param{kind: KindCycler, set: func(p *Params, v string) error {
		c, err := ParseCycler(v)
		if err != nil {
			return err
		}
		*field(p) = c
		return nil
	}}
}

func enumParam(field func(*Params) *string, allowed []string) param {
	return param{kind: KindEnum, set: func(p *Params, v string) error {
		s, err := ParseEnum(v, allowed...)
		if err != nil {
			return err
		}
		*field(p) = s
		return nil
	}}
}

func fontSizeParam(field func(*Params) *FontSize) param {
	return param{kind: KindFontSize, set: func(p *Params, v string) error {
		f, err := ParseFontSize(v)
		if err != nil {
			return err
		}
		*field(p) = f
		return nil
	}}
}

func fontListParam(field func(*Params) *[]string) param {
	return param{kind: KindFontList, set: func(p *Params, v string) error {
		fonts, err := ParseFontList(v)
		if err != nil {
			return err
		}
		*field(p) = fonts
		return nil
	}}
}

// setLegendLoc accepts location names and the numeric codes 0-10.
func setLegendLoc(p *Params, v string) error {
	if code, err := strconv.Atoi(v); err == nil {
		if code < 0 || code >= len(legendLocations) {
			return fmt.Errorf("%w: location code %d", ErrOutOfRange, code)
		}
		p.Legend.Loc = legendLocations[code]
		return nil
	}
	loc, err := ParseEnum(v, legendLocations...)
	if err != nil {
		return err
	}
	p.Legend.Loc = loc
	return nil
}

// setFontWeight accepts weight names and numeric weights 100-900.
func setFontWeight(p *Params, v string) error {
	if w, err := strconv.Atoi(v); err == nil {
		if w < 100 || w > 900 || w%100 != 0 {
			return fmt.Errorf("%w: font weight %d", ErrOutOfRange, w)
		}
		p.Font.Weight = v
		return nil
	}
	weight, err := ParseEnum(v, fontWeights...)
	if err != nil {
		return err
	}
	p.Font.Weight = weight
	return nil
}
