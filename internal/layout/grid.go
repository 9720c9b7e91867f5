package layout

import (
	"strconv"
	"strings"

	"github.com/jonkeda/wireframe/internal/wire"
)

// gridPlacement is one child's resolved cell region.
type gridPlacement struct {
	node             wire.Node
	row, col         int
	rowSpan, colSpan int
}

// arrangeGrid implements the Grid algorithm. Cells are addressed 0-based via
// grid=row,col[,rowSpan,colSpan]; unpositioned children fill free cells in
// row-major order, and a spanning child claims every covered cell.
func (e *engine) arrangeGrid(lay *wire.Layout, avail Rect) *BoxNode {
	pad := EdgeAll(lay.Number("padding", e.m.Padding))
	gap := lay.Number("gap", e.m.Gap)

	cols := int(lay.Number("cols", 2))
	if cols < 1 {
		e.errors.AddErrorf(wire.SemanticError, lay.Pos(), "grid needs at least one column")
		cols = 1
	}
	declRows := int(lay.Number("rows", 0))

	width := lay.Number("width", avail.Width)
	content := NewRect(avail.X+pad.Left, avail.Y+pad.Top,
		width-pad.Horizontal(), avail.Height-pad.Vertical())

	cellW := (content.Width - float64(cols-1)*gap) / float64(cols)
	if cellW < 0 {
		cellW = 0
	}

	flow := expandFlow(lay.Children)
	claimed := map[[2]int]bool{}
	placements := make([]gridPlacement, 0, len(flow))
	auto := 0 // row-major cursor for unpositioned children

	nextFree := func() (int, int) {
		for {
			r, c := auto/cols, auto%cols
			if !claimed[[2]int{r, c}] {
				return r, c
			}
			auto++
		}
	}

	for _, child := range flow {
		p := gridPlacement{node: child, row: -1, col: -1, rowSpan: 1, colSpan: 1}

		if base := elementBase(child); base != nil && base.Has("grid") {
			row, col, rs, cs, ok := parseGridSpec(base.StringAttr("grid"))
			if !ok {
				e.errors.AddErrorf(wire.SemanticError, child.Pos(),
					"malformed grid attribute %q, expected row,col[,rowSpan,colSpan]", base.StringAttr("grid"))
			} else if claimed[[2]int{row, col}] {
				e.errors.AddErrorf(wire.SemanticError, child.Pos(),
					"grid cell %d,%d is already claimed", row, col)
			} else {
				p.row, p.col, p.rowSpan, p.colSpan = row, col, rs, cs
			}
		}

		if p.row < 0 {
			p.row, p.col = nextFree()
		}
		if p.col+p.colSpan > cols {
			p.colSpan = cols - p.col
			if p.colSpan < 1 {
				p.colSpan = 1
			}
		}
		for r := p.row; r < p.row+p.rowSpan; r++ {
			for c := p.col; c < p.col+p.colSpan; c++ {
				claimed[[2]int{r, c}] = true
			}
		}
		placements = append(placements, p)
	}

	rows := declRows
	for _, p := range placements {
		if p.row+p.rowSpan > rows {
			rows = p.row + p.rowSpan
		}
	}
	if rows < 1 {
		rows = 1
	}

	// Cell height: divide a declared container height, otherwise use the
	// tallest natural child so rows don't clip their content.
	cellH := 48.0
	if h := lay.Number("height", 0); h > 0 {
		cellH = (h - pad.Vertical() - float64(rows-1)*gap) / float64(rows)
	} else {
		for _, p := range placements {
			if ctl, ok := p.node.(*wire.Control); ok {
				if nh := e.naturalSize(ctl).Height; nh > cellH {
					cellH = nh
				}
			}
		}
	}

	var boxes []*BoxNode
	for _, p := range placements {
		cell := NewRect(
			content.X+float64(p.col)*(cellW+gap),
			content.Y+float64(p.row)*(cellH+gap),
			float64(p.colSpan)*cellW+float64(p.colSpan-1)*gap,
			float64(p.rowSpan)*cellH+float64(p.rowSpan-1)*gap,
		)
		bn := e.arrange(p.node, cell, true)
		// The box is the union of the covered cells.
		bn.Box.Width = cell.Width
		bn.Box.Height = cell.Height
		boxes = append(boxes, bn)
	}

	height := lay.Number("height",
		float64(rows)*cellH+float64(rows-1)*gap+pad.Vertical())

	return &BoxNode{
		Source:   lay,
		Box:      Box{X: avail.X, Y: avail.Y, Width: width, Height: height, Padding: pad},
		Children: boxes,
	}
}

// parseGridSpec parses "row,col" or "row,col,rowSpan,colSpan" (0-based).
func parseGridSpec(spec string) (row, col, rowSpan, colSpan int, ok bool) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 && len(parts) != 4 {
		return 0, 0, 0, 0, false
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, 0, 0, 0, false
		}
		nums[i] = n
	}
	row, col, rowSpan, colSpan = nums[0], nums[1], 1, 1
	if len(nums) == 4 {
		rowSpan, colSpan = nums[2], nums[3]
		if rowSpan < 1 || colSpan < 1 {
			return 0, 0, 0, 0, false
		}
	}
	return row, col, rowSpan, colSpan, true
}

// elementBase returns the shared element fields of a node, or nil for nodes
// without them.
func elementBase(node wire.Node) *wire.ElementBase {
	switch n := node.(type) {
	case *wire.Layout:
		return &n.ElementBase
	case *wire.Section:
		return &n.ElementBase
	case *wire.Control:
		return &n.ElementBase
	case *wire.Component:
		return &n.ElementBase
	case *wire.Repeat:
		return &n.ElementBase
	case *wire.Conditional:
		return &n.ElementBase
	default:
		return nil
	}
}
