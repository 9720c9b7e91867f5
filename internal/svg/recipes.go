package svg

import (
	"fmt"
	"strings"

	"github.com/jonkeda/wireframe/internal/layout"
	"github.com/jonkeda/wireframe/internal/wire"
)

// recipe draws one control into the renderer's buffer. The box geometry is
// final by the time a recipe runs; recipes only paint.
type recipe func(r *Renderer, n *layout.BoxNode, ctl *wire.Control)

// recipes maps control keywords to their visual recipe. Keywords missing
// from this table degrade to the dashed placeholder.
// Populated in init: container recipes walk child boxes, so a literal would
// form an initialization cycle through the renderer.
var recipes map[string]recipe

func init() {
	recipes = map[string]recipe{
		"Button":      drawButton,
		"Label":       drawLabel,
		"Link":        drawLink,
		"TextInput":   drawTextInput,
		"TextArea":    drawTextArea,
		"Password":    drawPassword,
		"SearchInput": drawSearchInput,
		"Checkbox":    drawCheckbox,
		"Radio":       drawRadio,
		"Switch":      drawSwitch,
		"Dropdown":    drawDropdown,
		"Option":      drawOption,
		"Slider":      drawSlider,
		"Progress":    drawProgress,
		"Badge":       drawBadge,
		"Avatar":      drawAvatar,
		"Image":       drawImage,
		"Icon":        drawIcon,
		"Divider":     drawDivider,
		"Spacer":      drawSpacer,
		"Table":       drawTable,
		"Tree":        drawTree,
		"List":        drawList,
		"Tabs":        drawTabs,
		"Tab":         drawTab,
		"Breadcrumb":  drawBreadcrumb,
		"DatePicker":  drawDatePicker,
		"Chart":       drawChart,
	}
}

func drawButton(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	class, textClass := "wireframe-button", "wireframe-text"
	switch {
	case ctl.Modifiers.Primary:
		class += " wireframe-button--primary"
		textClass = "wireframe-text-inverse"
	case ctl.Modifiers.Danger:
		class += " wireframe-button--danger"
		textClass = "wireframe-text-inverse"
	}
	radius := r.theme.Border.Radius
	if ctl.Modifiers.Rounded {
		radius = rc.Height / 2
	}
	r.surface(rc, radius, class)
	label := ctl.Text
	if ctl.Icon != "" {
		label = strings.TrimSpace("[" + ctl.Icon + "] " + label)
	}
	r.textCentered(rc, label, textClass)
}

func drawLabel(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	class := "wireframe-text"
	if ctl.Modifiers.Secondary {
		class = "wireframe-text-muted"
	}
	r.text(rc.X, baseline(r, rc), ctl.Text, class, "")
}

func drawLink(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	y := baseline(r, rc)
	r.text(rc.X, y, ctl.Text, "wireframe-text", "")
	w := r.theme.Font.AvgCharWidth * float64(len(ctl.Text))
	r.line(rc.X, y+2, rc.X+w, y+2, "wireframe-accent-line")
}

func drawTextInput(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-input")
	r.text(rc.X+8, baseline(r, rc), ctl.Text, "wireframe-text-muted", "")
}

func drawTextArea(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-input")
	r.text(rc.X+8, rc.Y+r.theme.Font.LineHeight, ctl.Text, "wireframe-text-muted", "")
	// resize grip
	r.line(rc.Right()-10, rc.Bottom()-4, rc.Right()-4, rc.Bottom()-10, "wireframe-line")
	r.line(rc.Right()-7, rc.Bottom()-4, rc.Right()-4, rc.Bottom()-7, "wireframe-line")
}

func drawPassword(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-input")
	cy := rc.Y + rc.Height/2
	for i := 0; i < 6; i++ {
		r.circle(rc.X+12+float64(i)*10, cy, 2.5, "wireframe-fill")
	}
}

func drawSearchInput(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, rc.Height/2, "wireframe-input")
	cx, cy := rc.X+14, rc.Y+rc.Height/2-1
	r.circle(cx, cy, 5, "wireframe-outline")
	r.line(cx+4, cy+4, cx+8, cy+8, "wireframe-line")
	r.text(rc.X+28, baseline(r, rc), ctl.Text, "wireframe-text-muted", "")
}

func drawCheckbox(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	size := 16.0
	boxY := rc.Y + (rc.Height-size)/2
	r.rect(layout.NewRect(rc.X, boxY, size, size), 3, "wireframe-input")
	if ctl.Modifiers.Checked {
		d := fmt.Sprintf("M %s %s L %s %s L %s %s",
			coord(rc.X+3), coord(boxY+8),
			coord(rc.X+7), coord(boxY+12),
			coord(rc.X+13), coord(boxY+4))
		r.path(d, "wireframe-check")
	}
	r.text(rc.X+size+8, baseline(r, rc), ctl.Text, "wireframe-text", "")
}

func drawRadio(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	cy := rc.Y + rc.Height/2
	r.circle(rc.X+8, cy, 8, "wireframe-input")
	if ctl.Modifiers.Checked || ctl.Modifiers.Selected {
		r.circle(rc.X+8, cy, 4, "wireframe-fill")
	}
	r.text(rc.X+24, baseline(r, rc), ctl.Text, "wireframe-text", "")
}

func drawSwitch(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	trackW, trackH := 34.0, 18.0
	trackY := rc.Y + (rc.Height-trackH)/2
	on := ctl.Modifiers.Checked
	trackClass := "wireframe-track"
	if on {
		trackClass = "wireframe-badge"
	}
	r.rect(layout.NewRect(rc.X, trackY, trackW, trackH), trackH/2, trackClass)
	knobX := rc.X + 9
	if on {
		knobX = rc.X + trackW - 9
	}
	r.circle(knobX, trackY+trackH/2, 7, "wireframe-surface")
	r.text(rc.X+trackW+8, baseline(r, rc), ctl.Text, "wireframe-text", "")
}

func drawDropdown(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-input")
	label := ctl.Text
	if label == "" && len(ctl.Options) > 0 {
		label = ctl.Options[0]
	}
	r.text(rc.X+8, baseline(r, rc), label, "wireframe-text", "")
	cx, cy := rc.Right()-14, rc.Y+rc.Height/2
	d := fmt.Sprintf("M %s %s L %s %s L %s %s",
		coord(cx-4), coord(cy-2), coord(cx), coord(cy+3), coord(cx+4), coord(cy-2))
	r.path(d, "wireframe-check")
}

func drawOption(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	if ctl.Modifiers.Selected {
		r.rect(rc, 0, "wireframe-badge")
		r.text(rc.X+8, baseline(r, rc), ctl.Text, "wireframe-text-inverse", "")
		return
	}
	r.text(rc.X+8, baseline(r, rc), ctl.Text, "wireframe-text", "")
}

func drawSlider(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	cy := rc.Y + rc.Height/2
	frac := clampFrac(ctl.Number("value", 50) / 100)
	knobX := rc.X + rc.Width*frac
	r.line(rc.X, cy, rc.Right(), cy, "wireframe-line")
	r.line(rc.X, cy, knobX, cy, "wireframe-accent-line")
	r.circle(knobX, cy, 7, "wireframe-surface")
}

func drawProgress(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	frac := clampFrac(ctl.Number("value", 60) / 100)
	radius := rc.Height / 2
	r.rect(rc, radius, "wireframe-track")
	if frac > 0 {
		r.rect(layout.NewRect(rc.X, rc.Y, rc.Width*frac, rc.Height), radius, "wireframe-badge")
	}
}

func drawBadge(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, rc.Height/2, "wireframe-badge")
	r.textCentered(rc, ctl.Text, "wireframe-text-inverse")
}

func drawAvatar(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	radius := rc.Width / 2
	if rc.Height < rc.Width {
		radius = rc.Height / 2
	}
	cx, cy := rc.X+rc.Width/2, rc.Y+rc.Height/2
	r.circle(cx, cy, radius, "wireframe-surface")
	// head and shoulders
	r.circle(cx, cy-radius*0.25, radius*0.3, "wireframe-track")
	d := fmt.Sprintf("M %s %s Q %s %s %s %s",
		coord(cx-radius*0.55), coord(cy+radius*0.7),
		coord(cx), coord(cy), coord(cx+radius*0.55), coord(cy+radius*0.7))
	r.path(d, "wireframe-line")
}

func drawImage(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, 0, "wireframe-surface")
	r.line(rc.X, rc.Y, rc.Right(), rc.Bottom(), "wireframe-line")
	r.line(rc.Right(), rc.Y, rc.X, rc.Bottom(), "wireframe-line")
	r.circle(rc.X+rc.Width*0.25, rc.Y+rc.Height*0.3, 5, "wireframe-outline")
}

func drawIcon(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-outline")
	name := ctl.Icon
	if name == "" {
		name = ctl.Text
	}
	r.textCentered(rc, name, "wireframe-text-muted")
}

func drawDivider(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	cy := rc.Y + rc.Height/2
	r.line(rc.X, cy, rc.Right(), cy, "wireframe-line")
}

func drawSpacer(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	// Reserved space, nothing to paint.
}

func drawTable(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, 0, "wireframe-surface")

	cols := len(ctl.Columns)
	if cols == 0 {
		for _, row := range ctl.Rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
	}
	if cols == 0 {
		return
	}
	colW := rc.Width / float64(cols)
	rowH := r.theme.Font.LineHeight + 8

	y := rc.Y
	if len(ctl.Columns) > 0 {
		r.rect(layout.NewRect(rc.X, y, rc.Width, rowH), 0, "wireframe-table-header")
		for i, col := range ctl.Columns {
			r.text(rc.X+float64(i)*colW+6, y+rowH-8, col, "wireframe-text", "")
		}
		y += rowH
	}
	for _, row := range ctl.Rows {
		if y+rowH > rc.Bottom()+0.5 {
			break
		}
		for i, cell := range row {
			if i >= cols {
				break
			}
			r.text(rc.X+float64(i)*colW+6, y+rowH-8, cell, "wireframe-text-muted", "")
		}
		y += rowH
		r.line(rc.X, y, rc.Right(), y, "wireframe-line")
	}
	for i := 1; i < cols; i++ {
		x := rc.X + float64(i)*colW
		r.line(x, rc.Y, x, rc.Bottom(), "wireframe-line")
	}
}

func drawTree(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	y := rc.Y + r.theme.Font.LineHeight*0.75
	drawTreeItems(r, ctl.Items, rc.X, &y)
}

func drawTreeItems(r *Renderer, items []*wire.TreeItem, x float64, y *float64) {
	lh := r.theme.Font.LineHeight
	for _, item := range items {
		glyph := "-"
		if item.Branch {
			glyph = "+"
		}
		r.text(x, *y, glyph, "wireframe-text-muted", "")
		r.text(x+14, *y, item.Text, "wireframe-text", "")
		*y += lh
		drawTreeItems(r, item.Children, x+16, y)
	}
}

func drawList(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-outline")
	for _, c := range n.Children {
		crc := c.Box.Rect()
		r.circle(rc.X+10, crc.Y+crc.Height/2, 2.5, "wireframe-fill")
		r.walk(c)
	}
}

func drawTabs(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	for _, c := range n.Children {
		r.walk(c)
	}
	r.line(rc.X, rc.Bottom(), rc.Right(), rc.Bottom(), "wireframe-line")
}

func drawTab(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	if ctl.Modifiers.Selected {
		r.rect(rc, r.theme.Border.Radius, "wireframe-surface")
		r.line(rc.X, rc.Bottom(), rc.Right(), rc.Bottom(), "wireframe-accent-line")
	}
	r.textCentered(rc, ctl.Text, "wireframe-text")
}

func drawBreadcrumb(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	x := rc.X
	y := baseline(r, rc)
	parts := strings.Split(ctl.Text, ">")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		class := "wireframe-text-muted"
		if i == len(parts)-1 {
			class = "wireframe-text"
		}
		r.text(x, y, part, class, "")
		x += r.theme.Font.AvgCharWidth * float64(len(part))
		if i < len(parts)-1 {
			r.text(x+4, y, "›", "wireframe-text-muted", "")
			x += 16
		}
	}
}

func drawDatePicker(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, r.theme.Border.Radius, "wireframe-input")
	r.text(rc.X+8, baseline(r, rc), ctl.Text, "wireframe-text-muted", "")
	// calendar glyph
	gx, gy := rc.Right()-22, rc.Y+(rc.Height-14)/2
	r.rect(layout.NewRect(gx, gy, 14, 14), 2, "wireframe-outline")
	r.line(gx, gy+4, gx+14, gy+4, "wireframe-line")
	r.line(gx+4, gy, gx+4, gy-3, "wireframe-line")
	r.line(gx+10, gy, gx+10, gy-3, "wireframe-line")
}

func drawChart(r *Renderer, n *layout.BoxNode, ctl *wire.Control) {
	rc := n.Box.Rect()
	r.rect(rc, 0, "wireframe-outline")
	pad := 10.0
	plot := rc.Inset(layout.EdgeAll(pad))

	switch ctl.StringAttr("type") {
	case "pie":
		radius := plot.Height / 2
		if plot.Width < plot.Height {
			radius = plot.Width / 2
		}
		cx, cy := plot.X+plot.Width/2, plot.Y+plot.Height/2
		r.circle(cx, cy, radius, "wireframe-surface")
		r.line(cx, cy, cx, cy-radius, "wireframe-line")
		r.line(cx, cy, cx+radius*0.85, cy+radius*0.5, "wireframe-line")
	case "bar":
		bars := []float64{0.45, 0.8, 0.6, 0.95, 0.3}
		barW := plot.Width / float64(len(bars)*2)
		for i, h := range bars {
			x := plot.X + float64(i*2)*barW + barW/2
			bh := plot.Height * h
			r.rect(layout.NewRect(x, plot.Bottom()-bh, barW, bh), 0, "wireframe-badge")
		}
	default:
		// axes + sample line series
		r.line(plot.X, plot.Y, plot.X, plot.Bottom(), "wireframe-line")
		r.line(plot.X, plot.Bottom(), plot.Right(), plot.Bottom(), "wireframe-line")
		points := []float64{0.7, 0.4, 0.55, 0.25, 0.45, 0.15}
		step := plot.Width / float64(len(points)-1)
		var d strings.Builder
		for i, p := range points {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&d, "%s %s %s ", cmd, coord(plot.X+float64(i)*step), coord(plot.Y+plot.Height*p))
		}
		r.path(strings.TrimSpace(d.String()), "wireframe-accent-line")
	}
}

// baseline returns the vertical text baseline for a single-line control.
func baseline(r *Renderer, rc layout.Rect) float64 {
	return rc.Y + rc.Height/2 + r.theme.Font.Size*0.35
}

func clampFrac(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
