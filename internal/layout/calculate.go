package layout

import "github.com/jonkeda/wireframe/internal/wire"

// engine carries per-call layout state. A fresh engine runs per Calculate
// call; nothing is shared or cached between calls.
type engine struct {
	m      Metrics
	errors *wire.ErrorList
}

// Calculate computes the box tree for a single AST node within the available
// rectangle. Diagnostics (grid conflicts, bad dock values, malformed
// position attributes) are returned alongside the tree, never raised.
func Calculate(node wire.Node, avail Rect, m Metrics) (*BoxNode, []*wire.Error) {
	e := &engine{m: m, errors: wire.NewErrorList()}
	bn := e.arrange(node, avail, true)
	return bn, e.errors.Errors()
}

// CalculateDocument lays out a document's top-level elements as a vertical
// stack filling the available rectangle. The returned root box grows beyond
// avail when the content needs more height.
func CalculateDocument(doc *wire.Document, avail Rect, m Metrics) (*BoxNode, []*wire.Error) {
	e := &engine{m: m, errors: wire.NewErrorList()}

	pad := EdgeAll(m.Padding)
	content := avail.Inset(pad)
	children, extent := e.stackVertical(doc.Elements, content, m.Gap)

	height := extent + pad.Vertical()
	if height < avail.Height {
		height = avail.Height
	}

	root := &BoxNode{
		Source: doc,
		Box: Box{
			X: avail.X, Y: avail.Y,
			Width: avail.Width, Height: height,
			Padding: pad,
		},
		Children: children,
	}
	return root, e.errors.Errors()
}

// arrange dispatches an AST node to its layout algorithm. fillWidth tells a
// control whether to take the full available width (stacked flow) or its
// natural width (horizontal flow).
func (e *engine) arrange(node wire.Node, avail Rect, fillWidth bool) *BoxNode {
	switch n := node.(type) {
	case *wire.Layout:
		switch n.Kind {
		case wire.LayoutVertical:
			return e.arrangeStack(n, &n.ElementBase, n.Children, avail, true)
		case wire.LayoutHorizontal:
			return e.arrangeStack(n, &n.ElementBase, n.Children, avail, false)
		case wire.LayoutGrid:
			return e.arrangeGrid(n, avail)
		case wire.LayoutDock:
			return e.arrangeDock(n, avail)
		case wire.LayoutCanvas:
			return e.arrangeCanvas(n, avail)
		case wire.LayoutScroll:
			return e.arrangeScroll(n, avail)
		}
		return e.arrangeStack(n, &n.ElementBase, n.Children, avail, true)

	case *wire.Section:
		return e.arrangeSection(n, avail)

	case *wire.Component:
		return e.arrangeStack(n, &n.ElementBase, n.Children, avail, true)

	case *wire.Control:
		return e.arrangeControl(n, avail, fillWidth)

	case *wire.Document:
		bn, _ := CalculateDocument(n, avail, e.m)
		return bn

	default:
		// Repeat and Conditional are expanded by their parent's flow; one
		// arriving here directly is laid out as its flattened body.
		if flow := expandFlow([]wire.Node{node}); len(flow) > 0 {
			pad := EdgeAll(0)
			content := avail.Inset(pad)
			children, extent := e.stackVertical(flow, content, e.m.Gap)
			return &BoxNode{
				Source:   node,
				Box:      Box{X: avail.X, Y: avail.Y, Width: avail.Width, Height: extent},
				Children: children,
			}
		}
		return &BoxNode{Source: node, Box: Box{X: avail.X, Y: avail.Y}}
	}
}

// expandFlow resolves flow-transparent nodes: a Repeat contributes its body
// Count times, a Conditional contributes its Then branch.
func expandFlow(children []wire.Node) []wire.Node {
	var out []wire.Node
	for _, c := range children {
		switch n := c.(type) {
		case *wire.Repeat:
			body := expandFlow(n.Body)
			for i := 0; i < n.Count; i++ {
				out = append(out, body...)
			}
		case *wire.Conditional:
			out = append(out, expandFlow(n.Then)...)
		default:
			out = append(out, c)
		}
	}
	return out
}

// stackVertical lays children top to bottom inside content, returning the
// boxes and the stacked extent: sum of child heights plus gaps.
func (e *engine) stackVertical(children []wire.Node, content Rect, gap float64) ([]*BoxNode, float64) {
	flow := expandFlow(children)
	var boxes []*BoxNode
	cursor := 0.0
	for i, child := range flow {
		if i > 0 {
			cursor += gap
		}
		childAvail := NewRect(content.X, content.Y+cursor, content.Width, content.Height-cursor)
		bn := e.arrange(child, childAvail, true)
		boxes = append(boxes, bn)
		cursor += bn.Box.Height
	}
	return boxes, cursor
}

// stackHorizontal lays children left to right inside content, returning the
// boxes and the stacked extent along the x axis.
func (e *engine) stackHorizontal(children []wire.Node, content Rect, gap float64) ([]*BoxNode, float64) {
	flow := expandFlow(children)
	var boxes []*BoxNode
	cursor := 0.0
	for i, child := range flow {
		if i > 0 {
			cursor += gap
		}
		childAvail := NewRect(content.X+cursor, content.Y, content.Width-cursor, content.Height)
		bn := e.arrange(child, childAvail, false)
		boxes = append(boxes, bn)
		cursor += bn.Box.Width
	}
	return boxes, cursor
}

// arrangeStack implements the Vertical and Horizontal algorithms: children
// stacked along one axis with a fixed gap, the cross axis defaulting to the
// container's available extent.
func (e *engine) arrangeStack(src wire.Node, base *wire.ElementBase, children []wire.Node, avail Rect, vertical bool) *BoxNode {
	pad := EdgeAll(base.Number("padding", e.m.Padding))
	gap := base.Number("gap", e.m.Gap)

	width := base.Number("width", avail.Width)
	height := base.Number("height", 0)

	content := NewRect(avail.X+pad.Left, avail.Y+pad.Top,
		width-pad.Horizontal(), avail.Height-pad.Vertical())
	if height > 0 {
		content.Height = height - pad.Vertical()
	}

	var boxes []*BoxNode
	if vertical {
		var extent float64
		boxes, extent = e.stackVertical(children, content, gap)
		if height == 0 {
			height = extent + pad.Vertical()
		}
	} else {
		boxes, _ = e.stackHorizontal(children, content, gap)
		if height == 0 {
			for _, b := range boxes {
				if h := b.Box.Height + pad.Vertical(); h > height {
					height = h
				}
			}
		}
	}

	return &BoxNode{
		Source:   src,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: height, Padding: pad},
		Children: boxes,
	}
}

// arrangeScroll implements the Scroll algorithm: Vertical flow clipped to a
// declared viewport height. Content exceeding the viewport is expected.
func (e *engine) arrangeScroll(lay *wire.Layout, avail Rect) *BoxNode {
	const defaultViewport = 200

	pad := EdgeAll(lay.Number("padding", e.m.Padding))
	gap := lay.Number("gap", e.m.Gap)
	width := lay.Number("width", avail.Width)
	viewport := lay.Number("height", defaultViewport)

	content := NewRect(avail.X+pad.Left, avail.Y+pad.Top,
		width-pad.Horizontal(), viewport-pad.Vertical())
	boxes, _ := e.stackVertical(lay.Children, content, gap)

	return &BoxNode{
		Source:   lay,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: viewport, Padding: pad},
		Children: boxes,
		Clipped:  true,
	}
}

// arrangeSection lays out a titled grouping container as a vertical stack
// below its title strip.
func (e *engine) arrangeSection(sec *wire.Section, avail Rect) *BoxNode {
	pad := EdgeAll(sec.Number("padding", e.m.Padding))
	gap := sec.Number("gap", e.m.Gap)
	width := sec.Number("width", avail.Width)

	titleH := 0.0
	if sec.Title != "" {
		titleH = e.m.LineHeight + 4
	}

	content := NewRect(avail.X+pad.Left, avail.Y+pad.Top+titleH,
		width-pad.Horizontal(), avail.Height-pad.Vertical()-titleH)
	boxes, extent := e.stackVertical(sec.Children, content, gap)

	height := sec.Number("height", extent+titleH+pad.Vertical())

	return &BoxNode{
		Source:   sec,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: height, Padding: pad},
		Children: boxes,
	}
}

// arrangeControl computes a leaf control's box. Nested children are laid out
// only for the container-ish controls (Tabs horizontally, List vertically);
// other payloads (dropdown options, table rows, tree items) are drawn by the
// control's own visual recipe.
func (e *engine) arrangeControl(ctl *wire.Control, avail Rect, fillWidth bool) *BoxNode {
	size := e.naturalSize(ctl)

	width := size.Width
	if fillWidth && !ctl.Has("width") {
		width = avail.Width
	}
	if width > avail.Width && avail.Width > 0 {
		width = avail.Width
	}

	box := Box{X: avail.X, Y: avail.Y, Width: width, Height: size.Height}
	bn := &BoxNode{Source: ctl, Box: box}

	switch ctl.Keyword {
	case "Tabs":
		content := box.Rect().Inset(EdgeSymmetric(2, 4))
		bn.Children, _ = e.stackHorizontal(ctl.Children, content, 4)
	case "List":
		content := box.Rect().Inset(EdgeAll(4))
		bn.Children, _ = e.stackVertical(ctl.Children, content, 2)
		if !ctl.Has("height") && len(bn.Children) > 0 {
			last := bn.Children[len(bn.Children)-1]
			bn.Box.Height = last.Box.Y + last.Box.Height - box.Y + 4
		}
	}
	return bn
}
