package wireframe

import (
	"fmt"

	"github.com/jonkeda/wireframe/internal/layout"
	"github.com/jonkeda/wireframe/internal/svg"
	"github.com/jonkeda/wireframe/internal/theme"
	"github.com/jonkeda/wireframe/internal/wire"
)

// MaxSourceLen is the largest accepted source, in bytes. Longer inputs are
// rejected outright instead of producing a diagnostic list.
const MaxSourceLen = 1 << 20

// Aliases re-exported so callers only import this package.
type (
	Document  = wire.Document
	Error     = wire.Error
	ErrorKind = wire.ErrorKind
	Position  = wire.Position
)

// Error kinds, ordered by pipeline stage.
const (
	LexError      = wire.LexError
	SyntaxError   = wire.SyntaxError
	SemanticError = wire.SemanticError
	RenderError   = wire.RenderError
)

// Options configures a render.
//
// The zero value renders on a 800x600 canvas with the document's declared
// style. Height is a minimum; output grows to fit content.
type Options struct {
	Theme  string // overrides the document's declared style
	Width  float64
	Height float64
	Scale  float64
	Seed   *int64 // pins the sketch effect for reproducible output
}

// Default canvas dimensions used when Options leaves them zero.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Result is a finished render: the SVG document plus every diagnostic the
// pipeline accumulated along the way.
type Result struct {
	SVG    string
	Width  float64
	Height float64
	Errors []*Error
}

// Parse compiles source into a document. Diagnostics never abort the parse;
// the returned document is the best-effort tree and the slice lists
// everything wrong with it. The error return fires only when the source
// exceeds MaxSourceLen.
func Parse(source string) (*Document, []*Error, error) {
	if len(source) > MaxSourceLen {
		return nil, nil, fmt.Errorf("source is %d bytes, limit is %d", len(source), MaxSourceLen)
	}
	doc, errs := wire.ParseSource(source)
	return doc, errs, nil
}

// Render lays out and draws a parsed document.
func Render(doc *Document, opts Options) Result {
	var diags []*Error

	th, themeErr := resolveTheme(doc, opts)
	if themeErr != nil {
		diags = append(diags, themeErr)
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	root, layoutErrs := layout.CalculateDocument(doc, layout.NewRect(0, 0, width, height), th.Metrics())
	diags = append(diags, layoutErrs...)

	out := svg.Render(root, th, svg.Options{Scale: opts.Scale, Seed: opts.Seed})
	diags = append(diags, out.Errors...)

	return Result{
		SVG:    out.SVG,
		Width:  out.Width,
		Height: out.Height,
		Errors: diags,
	}
}

// RenderToSVG compiles and renders in one call. Parse diagnostics and
// render diagnostics arrive in one combined slice, parse first.
func RenderToSVG(source string, opts Options) (Result, error) {
	doc, parseErrs, err := Parse(source)
	if err != nil {
		return Result{}, err
	}
	res := Render(doc, opts)
	res.Errors = append(parseErrs, res.Errors...)
	return res, nil
}

// Format renders a document back to canonical source text. Formatting the
// output again is a no-op.
func Format(doc *Document) string {
	return wire.Format(doc)
}

// Themes returns the built-in theme names, sorted.
func Themes() []string {
	return theme.Names()
}

// resolveTheme applies the precedence option > document style > default.
// An unknown option name produces a diagnostic and falls back to the
// document's style.
func resolveTheme(doc *Document, opts Options) (*theme.Theme, *Error) {
	if opts.Theme != "" {
		if th, ok := theme.Lookup(opts.Theme); ok {
			return th, nil
		}
		err := wire.NewError(wire.SemanticError, wire.Position{Line: 1, Column: 1},
			fmt.Sprintf("unknown theme %q", opts.Theme))
		return theme.Get(doc.Style), err
	}
	return theme.Get(doc.Style), nil
}
