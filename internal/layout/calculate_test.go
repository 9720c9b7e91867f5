package layout

import (
	"testing"

	"github.com/jonkeda/wireframe/internal/wire"
)

func control(keyword string) *wire.Control {
	return wire.NewControl(keyword, wire.Position{Line: 1, Column: 1})
}

func controlAttr(keyword string, attrs map[string]wire.AttrValue) *wire.Control {
	c := control(keyword)
	for k, v := range attrs {
		c.Attributes[k] = v
	}
	return c
}

func layoutNode(kind wire.LayoutKind, children ...wire.Node) *wire.Layout {
	lay := wire.NewLayout(kind, wire.Position{Line: 1, Column: 1})
	lay.Children = children
	return lay
}

func TestCalculateDocument_VerticalStack(t *testing.T) {
	doc := wire.NewDocument()
	doc.Elements = []wire.Node{control("Button"), control("Button"), control("Button")}

	root, errs := CalculateDocument(doc, NewRect(0, 0, 800, 600), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(root.Children))
	}

	// Default metrics: 12 padding, 8 gap, buttons 36 high filling the width.
	wantY := []float64{12, 56, 100}
	for i, child := range root.Children {
		if child.Box.Y != wantY[i] {
			t.Errorf("child %d: Y = %v, want %v", i, child.Box.Y, wantY[i])
		}
		if child.Box.X != 12 {
			t.Errorf("child %d: X = %v, want 12", i, child.Box.X)
		}
		if child.Box.Width != 776 {
			t.Errorf("child %d: width = %v, want 776", i, child.Box.Width)
		}
		if child.Box.Height != 36 {
			t.Errorf("child %d: height = %v, want 36", i, child.Box.Height)
		}
	}

	// Content fits, so the root keeps the requested height.
	if root.Box.Height != 600 {
		t.Errorf("root height = %v, want 600", root.Box.Height)
	}
}

func TestCalculateDocument_GrowsToContent(t *testing.T) {
	doc := wire.NewDocument()
	for i := 0; i < 10; i++ {
		doc.Elements = append(doc.Elements, control("Image"))
	}

	root, _ := CalculateDocument(doc, NewRect(0, 0, 800, 300), DefaultMetrics())
	// 10 images of 120 plus 9 gaps of 8 plus 24 padding.
	want := 10*120.0 + 9*8 + 24
	if root.Box.Height != want {
		t.Errorf("root height = %v, want %v", root.Box.Height, want)
	}
}

func TestArrange_HorizontalStack(t *testing.T) {
	lay := layoutNode(wire.LayoutHorizontal, control("Button"), control("Button"))

	root, errs := Calculate(lay, NewRect(0, 0, 800, 100), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}

	// Horizontal flow keeps natural control widths.
	first, second := root.Children[0], root.Children[1]
	if first.Box.X != 12 || first.Box.Width != 96 {
		t.Errorf("first = X %v W %v, want X 12 W 96", first.Box.X, first.Box.Width)
	}
	if second.Box.X != 116 {
		t.Errorf("second X = %v, want 116", second.Box.X)
	}
	// Container height wraps the tallest child plus padding.
	if root.Box.Height != 60 {
		t.Errorf("container height = %v, want 60", root.Box.Height)
	}
}

func TestArrange_Scroll(t *testing.T) {
	var children []wire.Node
	for i := 0; i < 10; i++ {
		children = append(children, control("Button"))
	}
	lay := layoutNode(wire.LayoutScroll, children...)

	root, errs := Calculate(lay, NewRect(0, 0, 400, 400), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !root.Clipped {
		t.Error("scroll box should be clipped")
	}
	if root.Box.Height != 200 {
		t.Errorf("viewport height = %v, want default 200", root.Box.Height)
	}
	// Content keeps flowing past the viewport.
	last := root.Children[len(root.Children)-1]
	if last.Box.Rect().Bottom() <= root.Box.Rect().Bottom() {
		t.Errorf("last child bottom %v should exceed viewport bottom %v",
			last.Box.Rect().Bottom(), root.Box.Rect().Bottom())
	}
}

func TestArrange_RepeatExpands(t *testing.T) {
	rep := wire.NewRepeat(3, wire.Position{})
	rep.Body = []wire.Node{control("Button")}
	lay := layoutNode(wire.LayoutVertical, rep)

	root, _ := Calculate(lay, NewRect(0, 0, 400, 400), DefaultMetrics())
	if len(root.Children) != 3 {
		t.Fatalf("got %d children, want 3 expanded copies", len(root.Children))
	}
	// All copies share the same source node.
	for _, child := range root.Children {
		if child.Source != rep.Body[0] {
			t.Error("expanded copy should point at the body node")
		}
	}
}

func TestArrange_ConditionalRendersThen(t *testing.T) {
	cond := wire.NewConditional("?user.loggedIn", wire.Position{})
	cond.Then = []wire.Node{control("Label")}
	cond.Else = []wire.Node{control("Button"), control("Button")}
	lay := layoutNode(wire.LayoutVertical, cond)

	root, _ := Calculate(lay, NewRect(0, 0, 400, 400), DefaultMetrics())
	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1 (Then branch only)", len(root.Children))
	}
	if ctl, ok := root.Children[0].Source.(*wire.Control); !ok || ctl.Keyword != "Label" {
		t.Errorf("child source = %+v, want the Label", root.Children[0].Source)
	}
}

func TestArrange_DeclaredSizeWins(t *testing.T) {
	btn := controlAttr("Button", map[string]wire.AttrValue{
		"width":  wire.NumberAttr(300),
		"height": wire.NumberAttr(50),
	})
	lay := layoutNode(wire.LayoutVertical, btn)

	root, _ := Calculate(lay, NewRect(0, 0, 800, 400), DefaultMetrics())
	child := root.Children[0]
	if child.Box.Width != 300 || child.Box.Height != 50 {
		t.Errorf("box = %vx%v, want 300x50", child.Box.Width, child.Box.Height)
	}
}

func TestNaturalSize(t *testing.T) {
	m := DefaultMetrics()
	e := &engine{m: m, errors: wire.NewErrorList()}

	t.Run("text widens button", func(t *testing.T) {
		btn := control("Button")
		btn.Text = "A rather long button label"
		size := e.naturalSize(btn)
		want := m.TextWidth(btn.Text) + 2*m.Padding
		if size.Width != want {
			t.Errorf("width = %v, want %v", size.Width, want)
		}
	})

	t.Run("table grows with rows", func(t *testing.T) {
		tbl := control("Table")
		tbl.Columns = []string{"a", "b"}
		tbl.Rows = [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}
		size := e.naturalSize(tbl)
		if size.Height != 4*tableRowHeight {
			t.Errorf("height = %v, want %v", size.Height, 4*tableRowHeight)
		}
	})

	t.Run("tree counts nested items", func(t *testing.T) {
		tree := control("Tree")
		tree.Items = []*wire.TreeItem{
			{Text: "a", Children: []*wire.TreeItem{{Text: "b"}, {Text: "c"}}},
			{Text: "d"},
		}
		size := e.naturalSize(tree)
		if size.Height != 4*m.LineHeight {
			t.Errorf("height = %v, want %v", size.Height, 4*m.LineHeight)
		}
	})

	t.Run("unknown keyword gets generic size", func(t *testing.T) {
		size := DefaultSize("Gizmo")
		if size.Width != 120 || size.Height != 36 {
			t.Errorf("size = %+v", size)
		}
	})
}
