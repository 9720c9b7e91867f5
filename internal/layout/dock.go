package layout

import (
	"strconv"
	"strings"

	"github.com/jonkeda/wireframe/internal/wire"
)

// arrangeDock implements the Dock algorithm. Top and bottom children consume
// height from the remaining rect first, left and right then consume width,
// and at most one fill child receives the final remainder.
func (e *engine) arrangeDock(lay *wire.Layout, avail Rect) *BoxNode {
	pad := EdgeAll(lay.Number("padding", e.m.Padding))
	width := lay.Number("width", avail.Width)
	height := lay.Number("height", avail.Height)

	remaining := NewRect(avail.X+pad.Left, avail.Y+pad.Top,
		width-pad.Horizontal(), height-pad.Vertical())

	flow := expandFlow(lay.Children)
	docks := make([]string, len(flow))
	for i, child := range flow {
		docks[i] = "fill"
		if base := elementBase(child); base != nil && base.Has("dock") {
			d := base.StringAttr("dock")
			switch d {
			case "top", "bottom", "left", "right", "fill":
				docks[i] = d
			default:
				e.errors.AddErrorf(wire.SemanticError, child.Pos(),
					"unknown dock position %q", d)
			}
		}
	}

	boxes := make([]*BoxNode, len(flow))

	// Phase 1: top/bottom strips.
	for i, child := range flow {
		switch docks[i] {
		case "top":
			h := e.dockExtent(child, false)
			slot := NewRect(remaining.X, remaining.Y, remaining.Width, h)
			boxes[i] = e.arrange(child, slot, true)
			boxes[i].Box.Height = h
			remaining.Y += h
			remaining.Height -= h
		case "bottom":
			h := e.dockExtent(child, false)
			slot := NewRect(remaining.X, remaining.Bottom()-h, remaining.Width, h)
			boxes[i] = e.arrange(child, slot, true)
			boxes[i].Box.Height = h
			remaining.Height -= h
		}
	}

	// Phase 2: left/right strips from what remains.
	for i, child := range flow {
		switch docks[i] {
		case "left":
			w := e.dockExtent(child, true)
			slot := NewRect(remaining.X, remaining.Y, w, remaining.Height)
			boxes[i] = e.arrange(child, slot, true)
			boxes[i].Box.Width = w
			boxes[i].Box.Height = remaining.Height
			remaining.X += w
			remaining.Width -= w
		case "right":
			w := e.dockExtent(child, true)
			slot := NewRect(remaining.Right()-w, remaining.Y, w, remaining.Height)
			boxes[i] = e.arrange(child, slot, true)
			boxes[i].Box.Width = w
			boxes[i].Box.Height = remaining.Height
			remaining.Width -= w
		}
	}

	// Phase 3: the final remainder.
	fillSeen := false
	for i, child := range flow {
		if docks[i] != "fill" {
			continue
		}
		if fillSeen {
			e.errors.AddError(wire.SemanticError, child.Pos(),
				"dock allows at most one fill child")
		}
		fillSeen = true
		boxes[i] = e.arrange(child, remaining, true)
		boxes[i].Box.Width = remaining.Width
		boxes[i].Box.Height = remaining.Height
	}

	return &BoxNode{
		Source:   lay,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: height, Padding: pad},
		Children: boxes,
	}
}

// dockExtent returns the size a docked strip consumes: its declared
// dimension, else its natural control size, else a default strip.
func (e *engine) dockExtent(node wire.Node, horizontal bool) float64 {
	const defaultStrip = 64

	if base := elementBase(node); base != nil {
		name := "height"
		if horizontal {
			name = "width"
		}
		if v := base.Number(name, 0); v > 0 {
			return v
		}
	}
	if ctl, ok := node.(*wire.Control); ok {
		size := e.naturalSize(ctl)
		if horizontal {
			return size.Width
		}
		return size.Height
	}
	return defaultStrip
}

// arrangeCanvas implements the Canvas algorithm: children sit at explicit
// canvas=x,y positions, ignoring flow entirely. The canvas's own box is
// fixed by its declared dimensions.
func (e *engine) arrangeCanvas(lay *wire.Layout, avail Rect) *BoxNode {
	width := lay.Number("width", avail.Width)
	height := lay.Number("height", avail.Height)

	var boxes []*BoxNode
	for _, child := range expandFlow(lay.Children) {
		x, y := 0.0, 0.0
		base := elementBase(child)
		if base != nil && base.Has("canvas") {
			px, py, ok := parsePair(base.StringAttr("canvas"))
			if !ok {
				e.errors.AddErrorf(wire.SemanticError, child.Pos(),
					"malformed canvas attribute %q, expected x,y", base.StringAttr("canvas"))
			} else {
				x, y = px, py
			}
		} else {
			e.errors.AddError(wire.SemanticError, child.Pos(),
				"canvas child is missing a canvas=x,y position")
		}

		slot := NewRect(avail.X+x, avail.Y+y, width-x, height-y)
		bn := e.arrange(child, slot, false)
		boxes = append(boxes, bn)
	}

	return &BoxNode{
		Source:   lay,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: height},
		Children: boxes,
	}
}

// parsePair parses an "x,y" attribute value.
func parsePair(spec string) (x, y float64, ok bool) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, errX := parseFloat(parts[0])
	y, errY := parseFloat(parts[1])
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
