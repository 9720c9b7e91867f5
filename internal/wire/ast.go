package wire

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // start position of the node in source
	End() Position // end position of the node in source
}

// AttrKind discriminates the coerced type of an attribute value.
type AttrKind uint8

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrBool
)

// AttrValue is a coerced name=value attribute value. Coercion order is
// number, then boolean, then raw string; quoted source values always stay
// strings.
type AttrValue struct {
	Kind AttrKind
	Num  float64
	Bool bool
	Str  string
}

// NumberAttr creates a numeric attribute value.
func NumberAttr(n float64) AttrValue { return AttrValue{Kind: AttrNumber, Num: n} }

// BoolAttr creates a boolean attribute value.
func BoolAttr(b bool) AttrValue { return AttrValue{Kind: AttrBool, Bool: b} }

// StringAttr creates a string attribute value.
func StringAttr(s string) AttrValue { return AttrValue{Kind: AttrString, Str: s} }

// String returns the value rendered back to source-ish text.
func (v AttrValue) String() string {
	switch v.Kind {
	case AttrNumber:
		return trimFloat(v.Num)
	case AttrBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return v.Str
	}
}

// Modifiers is the set of named boolean flags an element can carry.
type Modifiers struct {
	Primary   bool
	Secondary bool
	Danger    bool
	Success   bool
	Warning   bool
	Required  bool
	Disabled  bool
	Checked   bool
	Selected  bool
	Readonly  bool
	Multiline bool
	Rounded   bool
	Small     bool
	Large     bool
	Flat      bool
}

// Set enables the modifier with the given keyword name.
// Returns false if the name is not a known modifier.
func (m *Modifiers) Set(name string) bool {
	switch name {
	case "primary":
		m.Primary = true
	case "secondary":
		m.Secondary = true
	case "danger":
		m.Danger = true
	case "success":
		m.Success = true
	case "warning":
		m.Warning = true
	case "required":
		m.Required = true
	case "disabled":
		m.Disabled = true
	case "checked":
		m.Checked = true
	case "selected":
		m.Selected = true
	case "readonly":
		m.Readonly = true
	case "multiline":
		m.Multiline = true
	case "rounded":
		m.Rounded = true
	case "small":
		m.Small = true
	case "large":
		m.Large = true
	case "flat":
		m.Flat = true
	default:
		return false
	}
	return true
}

// ElementBase carries the identity, binding, and attribute fields shared by
// every element variant.
type ElementBase struct {
	ID         string
	Binding    string // data path declared with ?path
	Navigation string // target declared with @target
	Icon       string // icon name declared with $name
	Attributes map[string]AttrValue
	Modifiers  Modifiers

	Start  Position
	EndPos Position
}

func (b *ElementBase) node()         {}
func (b *ElementBase) Pos() Position { return b.Start }
func (b *ElementBase) End() Position { return b.EndPos }

// Number returns the numeric attribute named name, or fallback if absent or
// not numeric.
func (b *ElementBase) Number(name string, fallback float64) float64 {
	if v, ok := b.Attributes[name]; ok && v.Kind == AttrNumber {
		return v.Num
	}
	return fallback
}

// StringAttr returns the string form of the attribute named name, or "" if
// absent.
func (b *ElementBase) StringAttr(name string) string {
	if v, ok := b.Attributes[name]; ok {
		return v.String()
	}
	return ""
}

// Has reports whether the attribute named name is present.
func (b *ElementBase) Has(name string) bool {
	_, ok := b.Attributes[name]
	return ok
}

// LayoutKind selects one of the six layout algorithms.
type LayoutKind uint8

const (
	LayoutVertical LayoutKind = iota
	LayoutHorizontal
	LayoutGrid
	LayoutDock
	LayoutCanvas
	LayoutScroll
)

// layoutKindNames maps keyword names to layout kinds.
var layoutKindNames = map[string]LayoutKind{
	"Vertical":   LayoutVertical,
	"Horizontal": LayoutHorizontal,
	"Grid":       LayoutGrid,
	"Dock":       LayoutDock,
	"Canvas":     LayoutCanvas,
	"Scroll":     LayoutScroll,
}

// String returns the keyword name of the layout kind.
func (k LayoutKind) String() string {
	switch k {
	case LayoutVertical:
		return "Vertical"
	case LayoutHorizontal:
		return "Horizontal"
	case LayoutGrid:
		return "Grid"
	case LayoutDock:
		return "Dock"
	case LayoutCanvas:
		return "Canvas"
	case LayoutScroll:
		return "Scroll"
	default:
		return "Vertical"
	}
}

// Document is the root node of a parsed .wire file.
type Document struct {
	Style        string // clean, sketch, blueprint, or realistic
	Attributes   map[string]string
	Elements     []Node
	DataSections []*DataSection

	Start  Position
	EndPos Position
}

func (d *Document) node()         {}
func (d *Document) Pos() Position { return d.Start }
func (d *Document) End() Position { return d.EndPos }

// Layout is a container laid out by one of the six layout algorithms.
type Layout struct {
	ElementBase
	Kind     LayoutKind
	Children []Node
}

// Section is a named grouping container (Card, Header, Panel, ...).
type Section struct {
	ElementBase
	Keyword  string // section keyword as written
	Title    string
	Children []Node
}

// TreeItem is one row of a Tree control.
type TreeItem struct {
	Text     string
	Branch   bool // + marker (expandable) vs - marker (leaf)
	Children []*TreeItem
	Start    Position
}

// Control is a widget with a per-type visual recipe.
type Control struct {
	ElementBase
	Keyword string // control keyword as written, e.g. "Button"
	Text    string // inline label/placeholder text

	// Type-specific payloads
	Options  []string   // Dropdown inline options
	Columns  []string   // Table header cells
	Rows     [][]string // Table body cells
	Items    []*TreeItem
	Children []Node // nested Option/Tab/... children
}

// Component is a named reusable block.
type Component struct {
	ElementBase
	Name     string
	Children []Node
}

// Repeat duplicates its body Count times.
type Repeat struct {
	ElementBase
	Count int
	Body  []Node
}

// Conditional shows its Then branch when the condition holds. The mockup
// renders the Then branch; the Else branch is kept for tooling.
type Conditional struct {
	ElementBase
	Condition string
	Then      []Node
	Else      []Node
}

// DataSection is a named block of literal tabular metadata. Rows are stored
// uninterpreted; meaning is an external concern.
type DataSection struct {
	Keyword string // data, validations, calculations, rules, or fields
	Name    string // optional quoted name
	Rows    [][]string

	Start  Position
	EndPos Position
}

func (d *DataSection) node()         {}
func (d *DataSection) Pos() Position { return d.Start }
func (d *DataSection) End() Position { return d.EndPos }
