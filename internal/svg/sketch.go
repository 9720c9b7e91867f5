package svg

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Sketcher generates jittered path data that makes primitives look
// hand-drawn. The pseudo-random source is injected, never global: pin a seed
// and the generated geometry is exactly reproducible.
type Sketcher struct {
	rng       *rand.Rand
	roughness float64
	bowing    float64
}

// NewSketcher creates a Sketcher drawing randomness from src.
func NewSketcher(src rand.Source, roughness, bowing float64) *Sketcher {
	if roughness <= 0 {
		roughness = 1
	}
	if bowing < 0 {
		bowing = 0
	}
	return &Sketcher{rng: rand.New(src), roughness: roughness, bowing: bowing}
}

// jitter returns a random offset in [-scale, scale] weighted by roughness.
func (s *Sketcher) jitter(scale float64) float64 {
	return (s.rng.Float64()*2 - 1) * s.roughness * scale
}

// Line returns path data for a sketched line: two jittered, bowed passes,
// the way a pen retraces a stroke.
func (s *Sketcher) Line(x1, y1, x2, y2 float64) string {
	return s.linePass(x1, y1, x2, y2) + " " + s.linePass(x1, y1, x2, y2)
}

// linePass emits one cubic pass over the segment. Endpoint jitter scales
// with roughness; the control points bow perpendicular to the stroke.
func (s *Sketcher) linePass(x1, y1, x2, y2 float64) string {
	length := math.Hypot(x2-x1, y2-y1)
	off := math.Min(2+length*0.015, 4)

	// Unit perpendicular for bowing displacement.
	px, py := 0.0, 0.0
	if length > 0 {
		px = -(y2 - y1) / length
		py = (x2 - x1) / length
	}
	bow := s.bowing * math.Min(length/18, 8)

	t1 := 0.3 + s.rng.Float64()*0.15
	t2 := 0.6 + s.rng.Float64()*0.15
	b1 := (s.rng.Float64()*2 - 1) * bow
	b2 := (s.rng.Float64()*2 - 1) * bow

	c1x := x1 + (x2-x1)*t1 + px*b1 + s.jitter(off)
	c1y := y1 + (y2-y1)*t1 + py*b1 + s.jitter(off)
	c2x := x1 + (x2-x1)*t2 + px*b2 + s.jitter(off)
	c2y := y1 + (y2-y1)*t2 + py*b2 + s.jitter(off)

	return fmt.Sprintf("M%s,%s C%s,%s %s,%s %s,%s",
		coord(x1+s.jitter(off)), coord(y1+s.jitter(off)),
		coord(c1x), coord(c1y),
		coord(c2x), coord(c2y),
		coord(x2+s.jitter(off)), coord(y2+s.jitter(off)))
}

// Rect returns path data for a sketched rectangle outline.
func (s *Sketcher) Rect(x, y, w, h float64) string {
	sides := []string{
		s.Line(x, y, x+w, y),
		s.Line(x+w, y, x+w, y+h),
		s.Line(x+w, y+h, x, y+h),
		s.Line(x, y+h, x, y),
	}
	return strings.Join(sides, " ")
}

// Ellipse returns path data approximating a sketched ellipse: two passes of
// jittered points around the perimeter joined by curves.
func (s *Sketcher) Ellipse(cx, cy, rx, ry float64) string {
	return s.ellipsePass(cx, cy, rx, ry) + " " + s.ellipsePass(cx, cy, rx, ry)
}

func (s *Sketcher) ellipsePass(cx, cy, rx, ry float64) string {
	const segments = 9
	off := math.Min(1+(rx+ry)*0.03, 3)

	pts := make([][2]float64, segments)
	start := s.rng.Float64() * math.Pi * 2
	for i := 0; i < segments; i++ {
		angle := start + float64(i)/segments*math.Pi*2
		pts[i] = [2]float64{
			cx + math.Cos(angle)*rx + s.jitter(off),
			cy + math.Sin(angle)*ry + s.jitter(off),
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "M%s,%s", coord(pts[0][0]), coord(pts[0][1]))
	for i := 1; i <= segments; i++ {
		p := pts[i%segments]
		prev := pts[i-1]
		mx := (prev[0]+p[0])/2 + s.jitter(off*0.5)
		my := (prev[1]+p[1])/2 + s.jitter(off*0.5)
		fmt.Fprintf(&sb, " Q%s,%s %s,%s", coord(mx), coord(my), coord(p[0]), coord(p[1]))
	}
	return sb.String()
}

// coord formats a coordinate with two decimals, trimming trailing zeros so
// output stays compact and byte-stable.
func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
