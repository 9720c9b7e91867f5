package wire

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF     TokenType = iota // end of file
	TokenError                    // lexer error
	TokenNewline                  // newline
	TokenIndent                   // indentation level increase
	TokenDedent                   // indentation level decrease

	// Keywords by grammar category
	TokenWireframe // "wireframe" document header
	TokenLayout    // Vertical, Horizontal, Grid, Dock, Canvas, Scroll
	TokenSection   // Header, Footer, Card, Panel, ...
	TokenControl   // Button, TextInput, Table, ...
	TokenComponent // Component
	TokenRepeat    // Repeat
	TokenIf        // If
	TokenElse      // Else
	TokenData      // data, validations, calculations, rules, fields

	// Literals
	TokenIdent  // bare identifier (modifier keywords, conditions)
	TokenString // string literal: "..." or '...'
	TokenNumber // numeric literal: 123 or 1.5
	TokenBool   // boolean literal: true/false

	// Sigil-prefixed forms
	TokenID         // :identifier
	TokenBinding    // ?path.to.value
	TokenNavigation // @target or @path/target
	TokenIcon       // $name or $icon:name
	TokenDocAttr    // %name: value (document attribute)

	// Composite forms
	TokenAttribute // name=value pair
	TokenTableRow  // | a | b | c |
	TokenTableSep  // |---|---|
	TokenBranch    // + tree branch marker
	TokenLeaf      // - tree leaf marker
	TokenClose     // /Keyword explicit close
)

// tokenNames maps token types to their string names for errors and debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenError:      "Error",
	TokenNewline:    "Newline",
	TokenIndent:     "Indent",
	TokenDedent:     "Dedent",
	TokenWireframe:  "wireframe",
	TokenLayout:     "Layout",
	TokenSection:    "Section",
	TokenControl:    "Control",
	TokenComponent:  "Component",
	TokenRepeat:     "Repeat",
	TokenIf:         "If",
	TokenElse:       "Else",
	TokenData:       "DataSection",
	TokenIdent:      "Ident",
	TokenString:     "String",
	TokenNumber:     "Number",
	TokenBool:       "Bool",
	TokenID:         "Id",
	TokenBinding:    "Binding",
	TokenNavigation: "Navigation",
	TokenIcon:       "Icon",
	TokenDocAttr:    "DocAttr",
	TokenAttribute:  "Attribute",
	TokenTableRow:   "TableRow",
	TokenTableSep:   "TableSeparator",
	TokenBranch:     "Branch",
	TokenLeaf:       "Leaf",
	TokenClose:      "Close",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position identifies a location in .wire source. Line and Column are 1-based;
// Offset is the byte offset from the start of the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Tokens are produced once by the lexer and
// never mutated afterwards.
type Token struct {
	Type    TokenType
	Literal string
	Start   Position
	End     Position

	// AttrName and AttrValue are set for TokenAttribute and TokenDocAttr.
	AttrName  string
	AttrValue string
	// Quoted records whether AttrValue was written as a quoted string.
	// Quoted attribute values are never coerced to numbers or booleans.
	Quoted bool

	// CloseKeyword is set for TokenClose ("/Card" carries "Card").
	CloseKeyword string
}

// layoutKeywords are the container keywords handled by the layout engine.
var layoutKeywords = map[string]bool{
	"Vertical":   true,
	"Horizontal": true,
	"Grid":       true,
	"Dock":       true,
	"Canvas":     true,
	"Scroll":     true,
}

// sectionKeywords are named grouping containers.
var sectionKeywords = map[string]bool{
	"Header":  true,
	"Footer":  true,
	"Card":    true,
	"Panel":   true,
	"Group":   true,
	"Form":    true,
	"Toolbar": true,
	"Sidebar": true,
	"Modal":   true,
}

// controlKeywords are the leaf-ish widgets with per-type visual recipes.
var controlKeywords = map[string]bool{
	"Button":      true,
	"Label":       true,
	"Link":        true,
	"TextInput":   true,
	"TextArea":    true,
	"Password":    true,
	"SearchInput": true,
	"Checkbox":    true,
	"Radio":       true,
	"Switch":      true,
	"Dropdown":    true,
	"Option":      true,
	"Slider":      true,
	"Progress":    true,
	"Badge":       true,
	"Avatar":      true,
	"Image":       true,
	"Icon":        true,
	"Divider":     true,
	"Spacer":      true,
	"Table":       true,
	"Tree":        true,
	"List":        true,
	"Tabs":        true,
	"Tab":         true,
	"Breadcrumb":  true,
	"DatePicker":  true,
	"Chart":       true,
}

// dataKeywords introduce named tabular metadata sections.
var dataKeywords = map[string]bool{
	"data":         true,
	"validations":  true,
	"calculations": true,
	"rules":        true,
	"fields":       true,
}

// keywordType classifies an identifier into its token category.
// Unknown identifiers lex as TokenIdent.
func keywordType(name string) TokenType {
	switch {
	case name == "wireframe":
		return TokenWireframe
	case name == "Component":
		return TokenComponent
	case name == "Repeat":
		return TokenRepeat
	case name == "If":
		return TokenIf
	case name == "Else":
		return TokenElse
	case name == "true", name == "false":
		return TokenBool
	case layoutKeywords[name]:
		return TokenLayout
	case sectionKeywords[name]:
		return TokenSection
	case controlKeywords[name]:
		return TokenControl
	case dataKeywords[name]:
		return TokenData
	default:
		return TokenIdent
	}
}
