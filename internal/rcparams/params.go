package rcparams

import (
	"slices"

	"github.com/MKhiriev/go-plot-style/internal/style"
)

// Params are the typed renderer defaults a style document overrides.
type Params struct {
	Figure FigureParams `json:"figure" yaml:"figure"`
	Axes   AxesParams   `json:"axes" yaml:"axes"`
	Grid   GridParams   `json:"grid" yaml:"grid"`
	Lines  LinesParams  `json:"lines" yaml:"lines"`
	Legend LegendParams `json:"legend" yaml:"legend"`
	Font   FontParams   `json:"font" yaml:"font"`
	Text   TextParams   `json:"text" yaml:"text"`
	XTick  TickParams   `json:"xtick" yaml:"xtick"`
	YTick  TickParams   `json:"ytick" yaml:"ytick"`
}

type FigureParams struct {
	Size [2]float64 `json:"figsize" yaml:"figsize"`
	DPI  float64    `json:"dpi" yaml:"dpi"`
}

type AxesParams struct {
	PropCycle            Cycle    `json:"prop_cycle" yaml:"prop_cycle"`
	Grid                 bool     `json:"grid" yaml:"grid"`
	FormatterLimits      [2]int   `json:"formatter_limits" yaml:"formatter_limits"`
	FormatterUseMathText bool     `json:"formatter_use_mathtext" yaml:"formatter_use_mathtext"`
	FaceColor            Color    `json:"facecolor" yaml:"facecolor"`
	EdgeColor            Color    `json:"edgecolor" yaml:"edgecolor"`
	LineWidth            float64  `json:"linewidth" yaml:"linewidth"`
	LabelSize            FontSize `json:"labelsize" yaml:"labelsize"`
	TitleSize            FontSize `json:"titlesize" yaml:"titlesize"`
}

type GridParams struct {
	Color     Color   `json:"color" yaml:"color"`
	LineStyle string  `json:"linestyle" yaml:"linestyle"`
	LineWidth float64 `json:"linewidth" yaml:"linewidth"`
	Alpha     float64 `json:"alpha" yaml:"alpha"`
}

type LinesParams struct {
	LineWidth       float64 `json:"linewidth" yaml:"linewidth"`
	LineStyle       string  `json:"linestyle" yaml:"linestyle"`
	Marker          string  `json:"marker" yaml:"marker"`
	MarkerSize      float64 `json:"markersize" yaml:"markersize"`
	MarkerEdgeWidth float64 `json:"markeredgewidth" yaml:"markeredgewidth"`
}

type LegendParams struct {
	Loc        string   `json:"loc" yaml:"loc"`
	FrameOn    bool     `json:"frameon" yaml:"frameon"`
	FancyBox   bool     `json:"fancybox" yaml:"fancybox"`
	Shadow     bool     `json:"shadow" yaml:"shadow"`
	NumPoints  int      `json:"numpoints" yaml:"numpoints"`
	FontSize   FontSize `json:"fontsize" yaml:"fontsize"`
	FrameAlpha float64  `json:"framealpha" yaml:"framealpha"`
}

type FontParams struct {
	Family    []string `json:"family" yaml:"family"`
	Size      float64  `json:"size" yaml:"size"`
	Weight    string   `json:"weight" yaml:"weight"`
	Serif     []string `json:"serif" yaml:"serif"`
	SansSerif []string `json:"sans-serif" yaml:"sans-serif"`
	Monospace []string `json:"monospace" yaml:"monospace"`
}

type TextParams struct {
	UseTeX bool  `json:"usetex" yaml:"usetex"`
	Color  Color `json:"color" yaml:"color"`
}

type TickParams struct {
	MajorPad  float64  `json:"major_pad" yaml:"major_pad"`
	MinorPad  float64  `json:"minor_pad" yaml:"minor_pad"`
	MajorSize float64  `json:"major_size" yaml:"major_size"`
	MinorSize float64  `json:"minor_size" yaml:"minor_size"`
	Direction string   `json:"direction" yaml:"direction"`
	LabelSize FontSize `json:"labelsize" yaml:"labelsize"`
}

// DefaultParams returns matplotlib's built-in defaults for every
// recognized key.
func DefaultParams() *Params {
	black := Color{A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 1}
	tab10 := make([]string, len(tableauColors))
	for i, t := range tableauColors {
		tab10[i] = t.hex
	}
	gridColor, _ := parseHex("#b0b0b0")

	return &Params{
		Figure: FigureParams{Size: [2]float64{6.4, 4.8}, DPI: 100},
		Axes: AxesParams{
			PropCycle:       Cycle{Properties: []CycleProperty{{Name: "color", Values: tab10}}},
			FormatterLimits: [2]int{-5, 6},
			FaceColor:       white,
			EdgeColor:       black,
			LineWidth:       0.8,
			LabelSize:       FontSize{Name: "medium"},
			TitleSize:       FontSize{Name: "large"},
		},
		Grid: GridParams{Color: gridColor, LineStyle: "-", LineWidth: 0.8, Alpha: 1},
		Lines: LinesParams{
			LineWidth:       1.5,
			LineStyle:       "-",
			Marker:          "None",
			MarkerSize:      6,
			MarkerEdgeWidth: 1,
		},
		Legend: LegendParams{
			Loc:        "best",
			FrameOn:    true,
			FancyBox:   true,
			NumPoints:  1,
			FontSize:   FontSize{Name: "medium"},
			FrameAlpha: 0.8,
		},
		Font: FontParams{
			Family:    []string{"sans-serif"},
			Size:      10,
			Weight:    "normal",
			Serif:     []string{"DejaVu Serif", "Bitstream Vera Serif", "Computer Modern Roman", "Times New Roman", "serif"},
			SansSerif: []string{"DejaVu Sans", "Bitstream Vera Sans", "Computer Modern Sans Serif", "Arial", "sans-serif"},
			Monospace: []string{"DejaVu Sans Mono", "Bitstream Vera Sans Mono", "Computer Modern Typewriter", "Courier New", "monospace"},
		},
		Text:  TextParams{Color: black},
		XTick: defaultTicks(),
		YTick: defaultTicks(),
	}
}

func defaultTicks() TickParams {
	return TickParams{
		MajorPad:  3.5,
		MinorPad:  3.4,
		MajorSize: 3.5,
		MinorSize: 2,
		Direction: "out",
		LabelSize: FontSize{Name: "medium"},
	}
}

// Clone returns a deep copy of p.
func (p *Params) Clone() *Params {
	c := *p
	c.Axes.PropCycle = p.Axes.PropCycle.Clone()
	c.Font.Family = slices.Clone(p.Font.Family)
	c.Font.Serif = slices.Clone(p.Font.Serif)
	c.Font.SansSerif = slices.Clone(p.Font.SansSerif)
	c.Font.Monospace = slices.Clone(p.Font.Monospace)
	return &c
}

// Recognizes reports whether key is a parameter of p.
func (p *Params) Recognizes(key string) bool {
	_, ok := registry[key]
	return ok
}

// Set interprets value for key and stores it. It returns a
// *[TypeCoercionError] for a value of the wrong type and [ErrUnknownKey]
// for an unrecognized key; p is unchanged on error.
func (p *Params) Set(key, value string) error {
	param, ok := registry[key]
	if !ok {
		return UnknownKeyWarning{Key: key}
	}
	if err := param.set(p, value); err != nil {
		return &TypeCoercionError{Key: key, Value: value, Kind: param.kind, Err: err}
	}
	return nil
}

// ApplyDocument applies a document atomically: either every recognized
// setting is applied or, on any error, p is left untouched.
func (p *Params) ApplyDocument(doc *style.Document, opts ...ApplyOption) (Report, error) {
	staged := p.Clone()
	report, err := Apply(doc, staged, opts...)
	if err != nil {
		return report, err
	}
	*p = *staged
	return report, nil
}
