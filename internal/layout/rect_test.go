package layout

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.Right() != 110 {
		t.Errorf("Right() = %v, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		r     Rect
		edges Edges
		want  Rect
	}

	tests := map[string]tc{
		"uniform": {
			r:     NewRect(0, 0, 100, 100),
			edges: EdgeAll(10),
			want:  NewRect(10, 10, 80, 80),
		},
		"symmetric": {
			r:     NewRect(0, 0, 100, 50),
			edges: EdgeSymmetric(5, 20),
			want:  NewRect(20, 5, 60, 40),
		},
		"zero": {
			r:     NewRect(3, 4, 10, 10),
			edges: EdgeAll(0),
			want:  NewRect(3, 4, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Inset(tt.edges); got != tt.want {
				t.Errorf("Inset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	got := a.Union(b)
	want := NewRect(0, 0, 30, 15)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}

	empty := Rect{}
	if a.Union(empty) != a {
		t.Error("union with empty should return the other rect")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}

	c := NewRect(50, 50, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint intersect should be empty")
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(10, 10) {
		t.Error("bottom-right corner is exclusive")
	}
}

func TestEdges_Sums(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
}
