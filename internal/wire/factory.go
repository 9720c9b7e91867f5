package wire

import "strconv"

// Factory functions construct zero-valued nodes of each kind. The parser uses
// them, and they keep programmatic/test construction one call away.

// NewDocument creates an empty document with the default clean style.
func NewDocument() *Document {
	return &Document{
		Style:      DefaultStyle,
		Attributes: map[string]string{},
	}
}

// DefaultStyle is the style applied when a document declares none, or
// declares one that is not recognized.
const DefaultStyle = "clean"

// KnownStyles are the four reserved style identifiers.
var KnownStyles = map[string]bool{
	"clean":     true,
	"sketch":    true,
	"blueprint": true,
	"realistic": true,
}

func newBase(pos Position) ElementBase {
	return ElementBase{
		Attributes: map[string]AttrValue{},
		Start:      pos,
		EndPos:     pos,
	}
}

// NewLayout creates an empty layout container of the given kind.
func NewLayout(kind LayoutKind, pos Position) *Layout {
	return &Layout{ElementBase: newBase(pos), Kind: kind}
}

// NewSection creates an empty section with the given keyword.
func NewSection(keyword string, pos Position) *Section {
	return &Section{ElementBase: newBase(pos), Keyword: keyword}
}

// NewControl creates an empty control of the given keyword type.
func NewControl(keyword string, pos Position) *Control {
	return &Control{ElementBase: newBase(pos), Keyword: keyword}
}

// NewComponent creates an empty named component.
func NewComponent(name string, pos Position) *Component {
	return &Component{ElementBase: newBase(pos), Name: name}
}

// NewRepeat creates a repeat block with the given count.
func NewRepeat(count int, pos Position) *Repeat {
	return &Repeat{ElementBase: newBase(pos), Count: count}
}

// NewConditional creates a conditional block with the given condition text.
func NewConditional(condition string, pos Position) *Conditional {
	return &Conditional{ElementBase: newBase(pos), Condition: condition}
}

// NewDataSection creates an empty data section with the given keyword.
func NewDataSection(keyword string, pos Position) *DataSection {
	return &DataSection{Keyword: keyword, Start: pos, EndPos: pos}
}

// trimFloat formats a float without a trailing ".0" for whole values.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
