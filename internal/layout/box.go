package layout

import "github.com/jonkeda/wireframe/internal/wire"

// Box holds the computed geometry for one AST node.
type Box struct {
	X, Y          float64
	Width, Height float64
	Padding       Edges
	Margin        Edges
}

// Rect returns the box's outer rectangle.
func (b Box) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Content returns the box's inner rectangle (outer minus padding).
func (b Box) Content() Rect {
	return b.Rect().Inset(b.Padding)
}

// BoxNode is one node of the transient box tree derived from the AST per
// render call. Source points back at the AST node the box was computed for;
// Repeat bodies produce multiple BoxNodes sharing one Source.
type BoxNode struct {
	Source   wire.Node
	Box      Box
	Children []*BoxNode

	// Clipped marks a Scroll viewport whose content may exceed the box.
	Clipped bool
}

// Metrics carries the theme measurements the layout engine depends on.
type Metrics struct {
	FontSize     float64 // body font size in px
	SmallFont    float64 // secondary font size in px
	AvgCharWidth float64 // estimated width of one character at FontSize
	LineHeight   float64 // height of one text line in px
	Gap          float64 // default space between stacked children
	Padding      float64 // default container padding
}

// DefaultMetrics returns metrics matching the clean theme.
func DefaultMetrics() Metrics {
	return Metrics{
		FontSize:     14,
		SmallFont:    11,
		AvgCharWidth: 7.5,
		LineHeight:   20,
		Gap:          8,
		Padding:      12,
	}
}

// TextWidth estimates the rendered width of s at the body font size.
// An average-character-width heuristic, deliberately not font metrics.
func (m Metrics) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * m.AvgCharWidth
}
