package layout

import (
	"testing"

	"github.com/jonkeda/wireframe/internal/wire"
)

func TestArrangeGrid_AutoPlacement(t *testing.T) {
	lay := layoutNode(wire.LayoutGrid,
		control("Button"), control("Button"),
		control("Button"), control("Button"))

	root, errs := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(root.Children))
	}

	// Default 2 columns: content 776 wide, cells (776-8)/2 = 384 by 48.
	wantX := []float64{12, 404, 12, 404}
	wantY := []float64{12, 12, 68, 68}
	for i, child := range root.Children {
		if child.Box.X != wantX[i] || child.Box.Y != wantY[i] {
			t.Errorf("child %d at %v,%v, want %v,%v",
				i, child.Box.X, child.Box.Y, wantX[i], wantY[i])
		}
		if child.Box.Width != 384 || child.Box.Height != 48 {
			t.Errorf("child %d box = %vx%v, want 384x48", i, child.Box.Width, child.Box.Height)
		}
	}

	// Two rows of 48 plus one gap plus padding.
	if root.Box.Height != 2*48+8+24 {
		t.Errorf("grid height = %v, want %v", root.Box.Height, 2*48+8+24)
	}
}

func TestArrangeGrid_ExplicitPlacement(t *testing.T) {
	a := controlAttr("Button", map[string]wire.AttrValue{"grid": wire.StringAttr("1,1")})
	b := control("Button")
	lay := layoutNode(wire.LayoutGrid, a, b)

	root, errs := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// a sits in cell 1,1 (0-based); b auto-fills the first free cell 0,0.
	if root.Children[0].Box.X != 404 || root.Children[0].Box.Y != 68 {
		t.Errorf("a at %v,%v, want 404,68", root.Children[0].Box.X, root.Children[0].Box.Y)
	}
	if root.Children[1].Box.X != 12 || root.Children[1].Box.Y != 12 {
		t.Errorf("b at %v,%v, want 12,12", root.Children[1].Box.X, root.Children[1].Box.Y)
	}
}

func TestArrangeGrid_Spanning(t *testing.T) {
	wide := controlAttr("Button", map[string]wire.AttrValue{"grid": wire.StringAttr("0,0,1,2")})
	next := control("Button")
	lay := layoutNode(wire.LayoutGrid, wide, next)

	root, errs := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// The span covers both columns: 2*384 + gap.
	if root.Children[0].Box.Width != 776 {
		t.Errorf("span width = %v, want 776", root.Children[0].Box.Width)
	}
	// Both row-0 cells are claimed, so the next child lands on row 1.
	if root.Children[1].Box.Y != 68 {
		t.Errorf("next Y = %v, want 68", root.Children[1].Box.Y)
	}
}

func TestArrangeGrid_CellConflict(t *testing.T) {
	a := controlAttr("Button", map[string]wire.AttrValue{"grid": wire.StringAttr("0,0")})
	b := controlAttr("Button", map[string]wire.AttrValue{"grid": wire.StringAttr("0,0")})
	lay := layoutNode(wire.LayoutGrid, a, b)

	root, errs := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Kind != wire.SemanticError {
		t.Errorf("kind = %v, want SemanticError", errs[0].Kind)
	}
	// The conflicting child is auto-placed in the next free cell.
	if root.Children[1].Box.X != 404 || root.Children[1].Box.Y != 12 {
		t.Errorf("b at %v,%v, want 404,12", root.Children[1].Box.X, root.Children[1].Box.Y)
	}
}

func TestArrangeGrid_MalformedSpec(t *testing.T) {
	bad := controlAttr("Button", map[string]wire.AttrValue{"grid": wire.StringAttr("one,two")})
	lay := layoutNode(wire.LayoutGrid, bad)

	_, errs := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	if len(errs) != 1 || errs[0].Kind != wire.SemanticError {
		t.Fatalf("errs = %v", errs)
	}
}

func TestParseGridSpec(t *testing.T) {
	type tc struct {
		spec string
		row  int
		col  int
		rs   int
		cs   int
		ok   bool
	}

	tests := map[string]tc{
		"pair":         {spec: "1,2", row: 1, col: 2, rs: 1, cs: 1, ok: true},
		"with spans":   {spec: "0,1,2,3", row: 0, col: 1, rs: 2, cs: 3, ok: true},
		"spaces":       {spec: " 1 , 2 ", row: 1, col: 2, rs: 1, cs: 1, ok: true},
		"three parts":  {spec: "1,2,3", ok: false},
		"negative":     {spec: "-1,0", ok: false},
		"zero span":    {spec: "0,0,0,1", ok: false},
		"not a number": {spec: "a,b", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			row, col, rs, cs, ok := parseGridSpec(tt.spec)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if row != tt.row || col != tt.col || rs != tt.rs || cs != tt.cs {
				t.Errorf("got %d,%d,%d,%d want %d,%d,%d,%d",
					row, col, rs, cs, tt.row, tt.col, tt.rs, tt.cs)
			}
		})
	}
}
