package layout

import "github.com/jonkeda/wireframe/internal/wire"

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// controlDefaults are the natural sizes used when a control declares none.
var controlDefaults = map[string]Size{
	"Button":      {Width: 96, Height: 36},
	"Label":       {Width: 80, Height: 24},
	"Link":        {Width: 80, Height: 24},
	"TextInput":   {Width: 200, Height: 36},
	"TextArea":    {Width: 200, Height: 80},
	"Password":    {Width: 200, Height: 36},
	"SearchInput": {Width: 220, Height: 36},
	"Checkbox":    {Width: 140, Height: 24},
	"Radio":       {Width: 140, Height: 24},
	"Switch":      {Width: 56, Height: 28},
	"Dropdown":    {Width: 200, Height: 36},
	"Option":      {Width: 180, Height: 28},
	"Slider":      {Width: 200, Height: 24},
	"Progress":    {Width: 200, Height: 12},
	"Badge":       {Width: 48, Height: 20},
	"Avatar":      {Width: 40, Height: 40},
	"Image":       {Width: 160, Height: 120},
	"Icon":        {Width: 24, Height: 24},
	"Divider":     {Width: 120, Height: 9},
	"Spacer":      {Width: 16, Height: 16},
	"Table":       {Width: 360, Height: 120},
	"Tree":        {Width: 220, Height: 96},
	"List":        {Width: 220, Height: 96},
	"Tabs":        {Width: 300, Height: 36},
	"Tab":         {Width: 90, Height: 32},
	"Breadcrumb":  {Width: 260, Height: 24},
	"DatePicker":  {Width: 160, Height: 36},
	"Chart":       {Width: 280, Height: 180},
}

// tableRowHeight is the height of one table row, header included.
const tableRowHeight = 28

// DefaultSize returns the natural size for a control keyword, falling back
// to a generic widget size for unknown keywords.
func DefaultSize(keyword string) Size {
	if s, ok := controlDefaults[keyword]; ok {
		return s
	}
	return Size{Width: 120, Height: 36}
}

// naturalSize computes a control's content-driven size: the type default,
// widened for inline text and grown for row-structured payloads.
func (e *engine) naturalSize(ctl *wire.Control) Size {
	size := DefaultSize(ctl.Keyword)

	switch ctl.Keyword {
	case "Label", "Link", "Breadcrumb":
		if ctl.Text != "" {
			size.Width = e.m.TextWidth(ctl.Text)
		}
	case "Button", "Badge", "Tab":
		if w := e.m.TextWidth(ctl.Text) + 2*e.m.Padding; w > size.Width {
			size.Width = w
		}
	case "Checkbox", "Radio", "Switch":
		if w := e.m.TextWidth(ctl.Text) + 28; w > size.Width {
			size.Width = w
		}
	case "Table":
		rows := len(ctl.Rows)
		if len(ctl.Columns) > 0 {
			rows++
		}
		if rows > 0 {
			size.Height = float64(rows) * tableRowHeight
		}
	case "Tree":
		if n := countTreeItems(ctl.Items); n > 0 {
			size.Height = float64(n) * e.m.LineHeight
		}
	case "List", "Tabs", "Dropdown":
		if n := len(ctl.Children) + len(ctl.Options); n > 0 && ctl.Keyword == "List" {
			size.Height = float64(n) * e.m.LineHeight
		}
	}

	// Explicit dimensions always win.
	size.Width = ctl.Number("width", size.Width)
	size.Height = ctl.Number("height", size.Height)
	return size
}

// countTreeItems counts tree rows including nested children.
func countTreeItems(items []*wire.TreeItem) int {
	n := 0
	for _, it := range items {
		n++
		n += countTreeItems(it.Children)
	}
	return n
}
