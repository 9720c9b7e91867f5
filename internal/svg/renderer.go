// Package svg renders computed box trees into themed SVG documents.
//
// Every control type has its own visual recipe; node kinds without one
// degrade to a dashed placeholder carrying the kind name instead of failing
// the whole render. When the theme enables the sketch effect, every
// primitive routes through a [Sketcher] so the whole drawing jitters
// consistently from a single injectable random source.
package svg

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jonkeda/wireframe/internal/layout"
	"github.com/jonkeda/wireframe/internal/theme"
	"github.com/jonkeda/wireframe/internal/wire"
)

// Options controls one render call.
type Options struct {
	// Scale multiplies the output pixel size; the viewBox is unchanged so
	// geometry stays stable across scales.
	Scale float64
	// Seed pins the sketch effect's random source for reproducible output.
	// Nil seeds from the clock.
	Seed *int64
}

// Result is the outcome of one render call.
type Result struct {
	SVG    string
	Width  float64
	Height float64
	Errors []*wire.Error
}

// Renderer holds per-call rendering state. A fresh Renderer runs per Render
// call; nothing is shared between calls except the read-only theme.
type Renderer struct {
	theme  *theme.Theme
	sk     *Sketcher // nil unless the theme enables sketch mode
	errors *wire.ErrorList
	buf    strings.Builder
}

// Render draws the box tree into a standalone SVG document.
func Render(root *layout.BoxNode, th *theme.Theme, opts Options) Result {
	r := &Renderer{theme: th, errors: wire.NewErrorList()}

	if th.Sketch.Enabled {
		var src rand.Source
		if opts.Seed != nil {
			src = rand.NewSource(*opts.Seed)
		} else {
			src = rand.NewSource(time.Now().UnixNano())
		}
		r.sk = NewSketcher(src, th.Sketch.Roughness, th.Sketch.Bowing)
	}

	width, height := root.Box.Width, root.Box.Height
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	r.writeHeader(width, height, scale)
	r.walk(root)
	r.buf.WriteString("</g>\n</svg>\n")

	return Result{
		SVG:    r.buf.String(),
		Width:  width * scale,
		Height: height * scale,
		Errors: r.errors.Errors(),
	}
}

// writeHeader emits the svg root, the class stylesheet, defs, and the
// background.
func (r *Renderer) writeHeader(w, h, scale float64) {
	fmt.Fprintf(&r.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		coord(w), coord(h), coord(w*scale), coord(h*scale))

	r.buf.WriteString("<style>\n")
	r.buf.WriteString(r.stylesheet())
	r.buf.WriteString("</style>\n")

	if r.theme.Shadow.Enabled {
		sh := r.theme.Shadow
		fmt.Fprintf(&r.buf,
			`<defs><filter id="wireframe-shadow" x="-20%%" y="-20%%" width="140%%" height="140%%">`+
				`<feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s" flood-opacity="%s"/>`+
				`</filter></defs>`+"\n",
			coord(sh.OffsetX), coord(sh.OffsetY), coord(sh.Blur/2), sh.Color, coord(sh.Opacity))
	}

	fmt.Fprintf(&r.buf,
		`<rect class="wireframe-background" x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		coord(w), coord(h), r.theme.Colors.Background)
	r.buf.WriteString(`<g class="wireframe-root">` + "\n")
}

// stylesheet builds the embedded class rules. The selectors are a stable
// contract: external stylesheets restyle the mockup through them without
// touching generated geometry.
func (r *Renderer) stylesheet() string {
	c := r.theme.Colors
	f := r.theme.Font
	b := r.theme.Border

	var sb strings.Builder
	put := func(sel, body string) {
		sb.WriteString(sel)
		sb.WriteString(" { ")
		sb.WriteString(body)
		sb.WriteString(" }\n")
	}

	put(".wireframe-root", fmt.Sprintf("font-family: %s;", f.Family))
	put(".wireframe-text", fmt.Sprintf("font-size: %spx; fill: %s; stroke: none;", coord(f.Size), c.Text))
	put(".wireframe-text-muted", fmt.Sprintf("font-size: %spx; fill: %s; stroke: none;", coord(f.SmallSize), c.MutedText))
	put(".wireframe-text-inverse", fmt.Sprintf("font-size: %spx; fill: %s; stroke: none;", coord(f.Size), c.PrimaryText))
	put(".wireframe-surface", fmt.Sprintf("fill: %s; stroke: %s; stroke-width: %s;", c.Surface, c.Border, coord(b.Width)))
	put(".wireframe-outline", fmt.Sprintf("fill: none; stroke: %s; stroke-width: %s;", c.Border, coord(b.Width)))
	put(".wireframe-line", fmt.Sprintf("stroke: %s; stroke-width: %s; fill: none;", c.Border, coord(b.Width)))
	put(".wireframe-accent-line", fmt.Sprintf("stroke: %s; stroke-width: 2; fill: none;", c.Accent))
	put(".wireframe-button", fmt.Sprintf("fill: %s; stroke: %s; stroke-width: %s;", c.Surface, c.Border, coord(b.Width)))
	put(".wireframe-button--primary", fmt.Sprintf("fill: %s; stroke: %s;", c.Primary, c.Primary))
	put(".wireframe-button--danger", fmt.Sprintf("fill: %s; stroke: %s;", c.Danger, c.Danger))
	put(".wireframe-input", fmt.Sprintf("fill: %s; stroke: %s; stroke-width: %s;", c.Background, c.Border, coord(b.Width)))
	put(".wireframe-check", fmt.Sprintf("stroke: %s; stroke-width: 2; fill: none;", c.Accent))
	put(".wireframe-fill", fmt.Sprintf("fill: %s; stroke: none;", c.Accent))
	put(".wireframe-track", fmt.Sprintf("fill: %s; stroke: %s; stroke-width: %s;", c.Background, c.Border, coord(b.Width)))
	put(".wireframe-badge", fmt.Sprintf("fill: %s; stroke: none;", c.Accent))
	put(".wireframe-table-header", fmt.Sprintf("fill: %s; stroke: %s; stroke-width: %s;", c.Surface, c.Border, coord(b.Width)))
	put(".wireframe-placeholder", fmt.Sprintf("fill: none; stroke: %s; stroke-width: %s; stroke-dasharray: 4 3;", c.Border, coord(b.Width)))

	return sb.String()
}

// walk recursively renders a box node.
func (r *Renderer) walk(n *layout.BoxNode) {
	if n == nil {
		return
	}
	switch src := n.Source.(type) {
	case *wire.Control:
		r.renderControl(n, src)
	case *wire.Section:
		r.renderSection(n, src)
	case *wire.Component:
		r.renderComponent(n, src)
	case *wire.Layout:
		r.renderLayout(n, src)
	default:
		for _, c := range n.Children {
			r.walk(c)
		}
	}
}

// renderLayout wraps a container's children in a group. A Scroll viewport
// nests an inner <svg>, which clips overflowing content by itself.
func (r *Renderer) renderLayout(n *layout.BoxNode, lay *wire.Layout) {
	kind := strings.ToLower(lay.Kind.String())
	fmt.Fprintf(&r.buf, `<g class="wireframe-layout wireframe-%s">`+"\n", kind)

	if n.Clipped {
		box := n.Box
		fmt.Fprintf(&r.buf, `<svg x="%s" y="%s" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
			coord(box.X), coord(box.Y), coord(box.Width), coord(box.Height),
			coord(box.X), coord(box.Y), coord(box.Width), coord(box.Height))
		for _, c := range n.Children {
			r.walk(c)
		}
		r.buf.WriteString("</svg>\n")
		r.rect(n.Box.Rect(), 0, "wireframe-outline")
		r.scrollbar(n.Box.Rect())
	} else {
		for _, c := range n.Children {
			r.walk(c)
		}
	}

	r.buf.WriteString("</g>\n")
}

// scrollbar draws the viewport's scrollbar hint.
func (r *Renderer) scrollbar(rc layout.Rect) {
	x := rc.Right() - 8
	r.rect(layout.NewRect(x, rc.Y+2, 6, rc.Height-4), 3, "wireframe-track")
	r.rect(layout.NewRect(x+1, rc.Y+4, 4, (rc.Height-8)/3), 2, "wireframe-badge")
}

// renderSection draws a titled surface with its children on top.
func (r *Renderer) renderSection(n *layout.BoxNode, sec *wire.Section) {
	fmt.Fprintf(&r.buf, `<g class="wireframe-section wireframe-%s">`+"\n", strings.ToLower(sec.Keyword))

	rc := n.Box.Rect()
	r.surface(rc, r.theme.Border.Radius, "wireframe-surface")
	if sec.Title != "" {
		titleY := rc.Y + n.Box.Padding.Top + r.theme.Font.LineHeight*0.7
		r.text(rc.X+n.Box.Padding.Left, titleY, sec.Title, "wireframe-text", "")
		lineY := rc.Y + n.Box.Padding.Top + r.theme.Font.LineHeight + 2
		r.line(rc.X+n.Box.Padding.Left, lineY, rc.Right()-n.Box.Padding.Right, lineY, "wireframe-line")
	}
	for _, c := range n.Children {
		r.walk(c)
	}

	r.buf.WriteString("</g>\n")
}

// renderComponent draws a reusable block as a labeled dashed region.
func (r *Renderer) renderComponent(n *layout.BoxNode, comp *wire.Component) {
	r.buf.WriteString(`<g class="wireframe-component">` + "\n")

	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-placeholder")
	if comp.Name != "" {
		r.text(rc.X+4, rc.Y+r.theme.Font.SmallSize+2, comp.Name, "wireframe-text-muted", "")
	}
	for _, c := range n.Children {
		r.walk(c)
	}

	r.buf.WriteString("</g>\n")
}

// renderControl dispatches to the control's visual recipe, or degrades to a
// placeholder when no recipe is registered.
func (r *Renderer) renderControl(n *layout.BoxNode, ctl *wire.Control) {
	fmt.Fprintf(&r.buf, `<g class="wireframe-%s">`+"\n", strings.ToLower(ctl.Keyword))

	if recipe, ok := recipes[ctl.Keyword]; ok {
		recipe(r, n, ctl)
	} else {
		r.errors.AddErrorf(wire.RenderError, ctl.Pos(),
			"no visual recipe registered for %s", ctl.Keyword)
		r.placeholder(n.Box.Rect(), ctl.Keyword)
	}

	r.buf.WriteString("</g>\n")
}

// placeholder draws the dashed fallback for unknown node kinds.
func (r *Renderer) placeholder(rc layout.Rect, kind string) {
	r.rect(rc, 0, "wireframe-placeholder")
	r.textCentered(rc, kind, "wireframe-text-muted")
}

// --- Primitives ---
//
// Each primitive routes through the Sketcher when sketch mode is on: the
// filled shape keeps its class (external restyling still works) while the
// outline is replaced by the jittered path. Inline style beats the class
// rules where the split requires it.

// rect draws a rectangle with optional corner radius.
func (r *Renderer) rect(rc layout.Rect, radius float64, class string) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	if r.sk != nil {
		fmt.Fprintf(&r.buf, `<rect x="%s" y="%s" width="%s" height="%s" class="%s" style="stroke:none"/>`+"\n",
			coord(rc.X), coord(rc.Y), coord(rc.Width), coord(rc.Height), class)
		fmt.Fprintf(&r.buf, `<path d="%s" class="%s" style="fill:none"/>`+"\n",
			r.sk.Rect(rc.X, rc.Y, rc.Width, rc.Height), class)
		return
	}
	rx := ""
	if radius > 0 {
		rx = fmt.Sprintf(` rx="%s"`, coord(radius))
	}
	fmt.Fprintf(&r.buf, `<rect x="%s" y="%s" width="%s" height="%s"%s class="%s"/>`+"\n",
		coord(rc.X), coord(rc.Y), coord(rc.Width), coord(rc.Height), rx, class)
}

// surface draws a themed surface rect, shadowed when the theme asks for it.
func (r *Renderer) surface(rc layout.Rect, radius float64, class string) {
	if r.theme.Shadow.Enabled && r.sk == nil {
		fmt.Fprintf(&r.buf, `<g filter="url(#wireframe-shadow)">`+"\n")
		r.rect(rc, radius, class)
		r.buf.WriteString("</g>\n")
		return
	}
	r.rect(rc, radius, class)
}

// line draws a straight line.
func (r *Renderer) line(x1, y1, x2, y2 float64, class string) {
	if r.sk != nil {
		fmt.Fprintf(&r.buf, `<path d="%s" class="%s" style="fill:none"/>`+"\n",
			r.sk.Line(x1, y1, x2, y2), class)
		return
	}
	fmt.Fprintf(&r.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" class="%s"/>`+"\n",
		coord(x1), coord(y1), coord(x2), coord(y2), class)
}

// circle draws a circle.
func (r *Renderer) circle(cx, cy, radius float64, class string) {
	if r.sk != nil {
		fmt.Fprintf(&r.buf, `<circle cx="%s" cy="%s" r="%s" class="%s" style="stroke:none"/>`+"\n",
			coord(cx), coord(cy), coord(radius), class)
		fmt.Fprintf(&r.buf, `<path d="%s" class="%s" style="fill:none"/>`+"\n",
			r.sk.Ellipse(cx, cy, radius, radius), class)
		return
	}
	fmt.Fprintf(&r.buf, `<circle cx="%s" cy="%s" r="%s" class="%s"/>`+"\n",
		coord(cx), coord(cy), coord(radius), class)
}

// path draws explicit path data. Sketch mode leaves custom paths alone;
// they are already detail geometry.
func (r *Renderer) path(d, class string) {
	fmt.Fprintf(&r.buf, `<path d="%s" class="%s"/>`+"\n", d, class)
}

// text draws a text run at a baseline position. anchor may be "middle" or
// "end"; empty means start-anchored.
func (r *Renderer) text(x, y float64, s, class, anchor string) {
	if s == "" {
		return
	}
	attr := ""
	if anchor != "" {
		attr = fmt.Sprintf(` text-anchor="%s"`, anchor)
	}
	fmt.Fprintf(&r.buf, `<text x="%s" y="%s"%s class="%s">%s</text>`+"\n",
		coord(x), coord(y), attr, class, escape(s))
}

// textCentered draws a text run centered in a rectangle.
func (r *Renderer) textCentered(rc layout.Rect, s, class string) {
	r.text(rc.X+rc.Width/2, rc.Y+rc.Height/2+r.theme.Font.Size*0.35, s, class, "middle")
}

// escape escapes text content for XML.
func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
