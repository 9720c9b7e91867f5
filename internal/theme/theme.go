// Package theme holds the built-in visual styles applied during rendering.
//
// A Theme is an immutable data record; the four built-ins (clean, sketch,
// blueprint, realistic) live in a read-only registry safe for concurrent use.
package theme

import (
	"sort"

	"github.com/jonkeda/wireframe/internal/layout"
)

// Palette is a theme's color set. Values are SVG color strings.
type Palette struct {
	Background  string
	Surface     string // card/panel fill
	Primary     string
	PrimaryText string // text on primary fill
	Text        string
	MutedText   string
	Border      string
	Accent      string
	Danger      string
	Success     string
	Warning     string
}

// Font is a theme's type settings.
type Font struct {
	Family       string
	Size         float64
	SmallSize    float64
	AvgCharWidth float64 // estimated glyph width at Size
	LineHeight   float64
}

// Spacing is a theme's spacing scale.
type Spacing struct {
	Gap     float64 // default space between stacked children
	Padding float64 // default container padding
}

// Border is a theme's stroke settings.
type Border struct {
	Width  float64
	Radius float64
}

// Shadow is a theme's drop-shadow settings.
type Shadow struct {
	Enabled bool
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   string
	Opacity float64
}

// Sketch controls the procedural hand-drawn effect.
type Sketch struct {
	Enabled   bool
	Roughness float64
	Bowing    float64
}

// Override adjusts a single control type's look.
type Override struct {
	Fill   string
	Stroke string
	Radius float64 // negative means inherit
}

// Theme is an immutable style record. Callers must not mutate a registered
// theme; copy it first.
type Theme struct {
	Name      string
	Colors    Palette
	Font      Font
	Spacing   Spacing
	Border    Border
	Shadow    Shadow
	Sketch    Sketch
	Overrides map[string]Override
}

// Metrics converts the theme's measurements into layout metrics.
func (t *Theme) Metrics() layout.Metrics {
	return layout.Metrics{
		FontSize:     t.Font.Size,
		SmallFont:    t.Font.SmallSize,
		AvgCharWidth: t.Font.AvgCharWidth,
		LineHeight:   t.Font.LineHeight,
		Gap:          t.Spacing.Gap,
		Padding:      t.Spacing.Padding,
	}
}

// builtin is the read-only theme table, the only state shared across calls.
var builtin = map[string]*Theme{
	"clean": {
		Name: "clean",
		Colors: Palette{
			Background:  "#ffffff",
			Surface:     "#f8f9fa",
			Primary:     "#4a90d9",
			PrimaryText: "#ffffff",
			Text:        "#333333",
			MutedText:   "#888888",
			Border:      "#c8ccd0",
			Accent:      "#4a90d9",
			Danger:      "#d9534f",
			Success:     "#5cb85c",
			Warning:     "#f0ad4e",
		},
		Font: Font{
			Family:       "Helvetica, Arial, sans-serif",
			Size:         14,
			SmallSize:    11,
			AvgCharWidth: 7.5,
			LineHeight:   20,
		},
		Spacing: Spacing{Gap: 8, Padding: 12},
		Border:  Border{Width: 1, Radius: 4},
	},

	"sketch": {
		Name: "sketch",
		Colors: Palette{
			Background:  "#fdfcf8",
			Surface:     "#faf8f0",
			Primary:     "#3a3a3a",
			PrimaryText: "#fdfcf8",
			Text:        "#2b2b2b",
			MutedText:   "#7a7a72",
			Border:      "#3a3a3a",
			Accent:      "#4a6fa5",
			Danger:      "#b5493f",
			Success:     "#4f8a4f",
			Warning:     "#c28f3a",
		},
		Font: Font{
			Family:       "'Comic Sans MS', 'Segoe Print', cursive",
			Size:         15,
			SmallSize:    12,
			AvgCharWidth: 8.2,
			LineHeight:   22,
		},
		Spacing: Spacing{Gap: 10, Padding: 14},
		Border:  Border{Width: 1.5, Radius: 2},
		Sketch:  Sketch{Enabled: true, Roughness: 1.2, Bowing: 1.0},
	},

	"blueprint": {
		Name: "blueprint",
		Colors: Palette{
			Background:  "#1e3a5f",
			Surface:     "#24456e",
			Primary:     "#dce8f5",
			PrimaryText: "#1e3a5f",
			Text:        "#dce8f5",
			MutedText:   "#8fa8c4",
			Border:      "#9db8d4",
			Accent:      "#ffffff",
			Danger:      "#e8a0a0",
			Success:     "#a0e8b0",
			Warning:     "#e8d0a0",
		},
		Font: Font{
			Family:       "'Courier New', monospace",
			Size:         13,
			SmallSize:    10,
			AvgCharWidth: 7.8,
			LineHeight:   19,
		},
		Spacing: Spacing{Gap: 8, Padding: 12},
		Border:  Border{Width: 1, Radius: 0},
	},

	"realistic": {
		Name: "realistic",
		Colors: Palette{
			Background:  "#f2f4f7",
			Surface:     "#ffffff",
			Primary:     "#2b6cb0",
			PrimaryText: "#ffffff",
			Text:        "#1a202c",
			MutedText:   "#718096",
			Border:      "#cbd5e0",
			Accent:      "#2b6cb0",
			Danger:      "#c53030",
			Success:     "#2f855a",
			Warning:     "#b7791f",
		},
		Font: Font{
			Family:       "'Segoe UI', Roboto, sans-serif",
			Size:         14,
			SmallSize:    11,
			AvgCharWidth: 7.2,
			LineHeight:   20,
		},
		Spacing: Spacing{Gap: 8, Padding: 16},
		Border:  Border{Width: 1, Radius: 6},
		Shadow: Shadow{
			Enabled: true,
			OffsetX: 0, OffsetY: 2, Blur: 6,
			Color: "#000000", Opacity: 0.15,
		},
	},
}

// Default is the style used when a document declares none.
const Default = "clean"

// Get returns the named theme, falling back to the clean default for
// unknown names.
func Get(name string) *Theme {
	if t, ok := builtin[name]; ok {
		return t
	}
	return builtin[Default]
}

// Lookup returns the named theme and whether it exists.
func Lookup(name string) (*Theme, bool) {
	t, ok := builtin[name]
	return t, ok
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
