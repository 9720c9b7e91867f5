package layout

import (
	"testing"

	"github.com/jonkeda/wireframe/internal/wire"
)

func TestArrangeDock_Strips(t *testing.T) {
	top := controlAttr("Label", map[string]wire.AttrValue{
		"dock": wire.StringAttr("top"), "height": wire.NumberAttr(50),
	})
	left := controlAttr("List", map[string]wire.AttrValue{
		"dock": wire.StringAttr("left"), "width": wire.NumberAttr(100),
	})
	fill := control("Image")
	lay := layoutNode(wire.LayoutDock, top, left, fill)
	lay.Attributes["width"] = wire.NumberAttr(600)
	lay.Attributes["height"] = wire.NumberAttr(400)

	root, errs := Calculate(lay, NewRect(0, 0, 800, 500), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// Declared dock dims with default 12 padding: top strip first, then the
	// left strip from what remains, then the fill takes the rest.
	topBox := root.Children[0].Box
	if topBox.Y != 12 || topBox.Height != 50 || topBox.Width != 576 {
		t.Errorf("top = %+v, want Y 12 H 50 W 576", topBox)
	}
	leftBox := root.Children[1].Box
	if leftBox.X != 12 || leftBox.Y != 62 || leftBox.Width != 100 || leftBox.Height != 326 {
		t.Errorf("left = %+v, want X 12 Y 62 W 100 H 326", leftBox)
	}
	fillBox := root.Children[2].Box
	if fillBox.X != 112 || fillBox.Y != 62 || fillBox.Width != 476 || fillBox.Height != 326 {
		t.Errorf("fill = %+v, want X 112 Y 62 W 476 H 326", fillBox)
	}
}

func TestArrangeDock_ExtraFill(t *testing.T) {
	lay := layoutNode(wire.LayoutDock, control("Image"), control("Image"))

	_, errs := Calculate(lay, NewRect(0, 0, 400, 300), DefaultMetrics())
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Kind != wire.SemanticError {
		t.Errorf("kind = %v, want SemanticError", errs[0].Kind)
	}
}

func TestArrangeDock_UnknownPosition(t *testing.T) {
	bad := controlAttr("Label", map[string]wire.AttrValue{"dock": wire.StringAttr("center")})
	lay := layoutNode(wire.LayoutDock, bad)

	_, errs := Calculate(lay, NewRect(0, 0, 400, 300), DefaultMetrics())
	if len(errs) != 1 || errs[0].Kind != wire.SemanticError {
		t.Fatalf("errs = %v", errs)
	}
}

func TestArrangeDock_NaturalStripSize(t *testing.T) {
	// An undeclared strip extent falls back to the control's natural size.
	top := controlAttr("Button", map[string]wire.AttrValue{"dock": wire.StringAttr("top")})
	lay := layoutNode(wire.LayoutDock, top)

	root, _ := Calculate(lay, NewRect(0, 0, 400, 300), DefaultMetrics())
	if root.Children[0].Box.Height != 36 {
		t.Errorf("strip height = %v, want natural 36", root.Children[0].Box.Height)
	}
}

func TestArrangeCanvas_Positions(t *testing.T) {
	a := controlAttr("Badge", map[string]wire.AttrValue{"canvas": wire.StringAttr("30,40")})
	lay := layoutNode(wire.LayoutCanvas, a)
	lay.Attributes["width"] = wire.NumberAttr(500)
	lay.Attributes["height"] = wire.NumberAttr(300)

	root, errs := Calculate(lay, NewRect(0, 0, 800, 600), DefaultMetrics())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.Box.Width != 500 || root.Box.Height != 300 {
		t.Errorf("canvas box = %vx%v, want 500x300", root.Box.Width, root.Box.Height)
	}
	child := root.Children[0].Box
	if child.X != 30 || child.Y != 40 {
		t.Errorf("child at %v,%v, want 30,40", child.X, child.Y)
	}
}

func TestArrangeCanvas_MissingPosition(t *testing.T) {
	lay := layoutNode(wire.LayoutCanvas, control("Badge"))

	root, errs := Calculate(lay, NewRect(0, 0, 400, 300), DefaultMetrics())
	if len(errs) != 1 || errs[0].Kind != wire.SemanticError {
		t.Fatalf("errs = %v", errs)
	}
	// The child still renders, parked at the origin.
	if root.Children[0].Box.X != 0 || root.Children[0].Box.Y != 0 {
		t.Errorf("child at %v,%v, want 0,0", root.Children[0].Box.X, root.Children[0].Box.Y)
	}
}

func TestParsePair(t *testing.T) {
	type tc struct {
		spec string
		x, y float64
		ok   bool
	}

	tests := map[string]tc{
		"integers": {spec: "30,40", x: 30, y: 40, ok: true},
		"floats":   {spec: "1.5, 2.5", x: 1.5, y: 2.5, ok: true},
		"one part": {spec: "30", ok: false},
		"words":    {spec: "a,b", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, y, ok := parsePair(tt.spec)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("got %v,%v want %v,%v", x, y, tt.x, tt.y)
			}
		})
	}
}
