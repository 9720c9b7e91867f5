package wire

import (
	"testing"
)

// kinds extracts the token type sequence for compact comparisons.
func kinds(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexer_BasicTokens(t *testing.T) {
	type tc struct {
		input    string
		expected []Token
	}

	tests := map[string]tc{
		"empty": {
			input:    "",
			expected: []Token{{Type: TokenEOF}},
		},
		"layout keyword": {
			input: "Vertical",
			expected: []Token{
				{Type: TokenLayout, Literal: "Vertical"},
				{Type: TokenEOF},
			},
		},
		"section keyword": {
			input: "Card",
			expected: []Token{
				{Type: TokenSection, Literal: "Card"},
				{Type: TokenEOF},
			},
		},
		"control keyword": {
			input: "Button",
			expected: []Token{
				{Type: TokenControl, Literal: "Button"},
				{Type: TokenEOF},
			},
		},
		"header keyword": {
			input: "wireframe sketch",
			expected: []Token{
				{Type: TokenWireframe, Literal: "wireframe"},
				{Type: TokenIdent, Literal: "sketch"},
				{Type: TokenEOF},
			},
		},
		"unknown word is ident": {
			input: "primary",
			expected: []Token{
				{Type: TokenIdent, Literal: "primary"},
				{Type: TokenEOF},
			},
		},
		"booleans": {
			input: "true false",
			expected: []Token{
				{Type: TokenBool, Literal: "true"},
				{Type: TokenBool, Literal: "false"},
				{Type: TokenEOF},
			},
		},
		"numbers": {
			input: "42 -3 1.5",
			expected: []Token{
				{Type: TokenNumber, Literal: "42"},
				{Type: TokenNumber, Literal: "-3"},
				{Type: TokenNumber, Literal: "1.5"},
				{Type: TokenEOF},
			},
		},
		"double quoted string": {
			input: `"hello world"`,
			expected: []Token{
				{Type: TokenString, Literal: "hello world"},
				{Type: TokenEOF},
			},
		},
		"single quoted string": {
			input: `'it works'`,
			expected: []Token{
				{Type: TokenString, Literal: "it works"},
				{Type: TokenEOF},
			},
		},
		"string escapes": {
			input: `"a\nb\t\"c\""`,
			expected: []Token{
				{Type: TokenString, Literal: "a\nb\t\"c\""},
				{Type: TokenEOF},
			},
		},
		"id sigil": {
			input: ":save-btn",
			expected: []Token{
				{Type: TokenID, Literal: "save-btn"},
				{Type: TokenEOF},
			},
		},
		"binding sigil": {
			input: "?user.name",
			expected: []Token{
				{Type: TokenBinding, Literal: "user.name"},
				{Type: TokenEOF},
			},
		},
		"navigation sigil": {
			input: "@settings/profile",
			expected: []Token{
				{Type: TokenNavigation, Literal: "settings/profile"},
				{Type: TokenEOF},
			},
		},
		"icon short form": {
			input: "$gear",
			expected: []Token{
				{Type: TokenIcon, Literal: "gear"},
				{Type: TokenEOF},
			},
		},
		"icon long form": {
			input: "$icon:gear",
			expected: []Token{
				{Type: TokenIcon, Literal: "gear"},
				{Type: TokenEOF},
			},
		},
		"close token": {
			input: "/Card",
			expected: []Token{
				{Type: TokenClose, Literal: "/Card", CloseKeyword: "Card"},
				{Type: TokenEOF},
			},
		},
		"line comment": {
			input: "Button // trailing note",
			expected: []Token{
				{Type: TokenControl, Literal: "Button"},
				{Type: TokenEOF},
			},
		},
		"block comment": {
			input: "Button /* note */ Badge",
			expected: []Token{
				{Type: TokenControl, Literal: "Button"},
				{Type: TokenControl, Literal: "Badge"},
				{Type: TokenEOF},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.expected), kinds(tokens))
			}
			for i, want := range tt.expected {
				got := tokens[i]
				if got.Type != want.Type {
					t.Errorf("token %d: type = %s, want %s", i, got.Type, want.Type)
				}
				if got.Literal != want.Literal {
					t.Errorf("token %d: literal = %q, want %q", i, got.Literal, want.Literal)
				}
				if want.CloseKeyword != "" && got.CloseKeyword != want.CloseKeyword {
					t.Errorf("token %d: closeKeyword = %q, want %q", i, got.CloseKeyword, want.CloseKeyword)
				}
			}
		})
	}
}

func TestLexer_Attributes(t *testing.T) {
	type tc struct {
		input  string
		name   string
		value  string
		quoted bool
	}

	tests := map[string]tc{
		"bare number":   {input: "width=200", name: "width", value: "200"},
		"bare word":     {input: "dock=top", name: "dock", value: "top"},
		"bare boolean":  {input: "visible=true", name: "visible", value: "true"},
		"quoted value":  {input: `title="Hello World"`, name: "title", value: "Hello World", quoted: true},
		"quoted number": {input: `code="42"`, name: "code", value: "42", quoted: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if tokens[0].Type != TokenAttribute {
				t.Fatalf("type = %s, want Attribute", tokens[0].Type)
			}
			if tokens[0].AttrName != tt.name {
				t.Errorf("attrName = %q, want %q", tokens[0].AttrName, tt.name)
			}
			if tokens[0].AttrValue != tt.value {
				t.Errorf("attrValue = %q, want %q", tokens[0].AttrValue, tt.value)
			}
			if tokens[0].Quoted != tt.quoted {
				t.Errorf("quoted = %v, want %v", tokens[0].Quoted, tt.quoted)
			}
		})
	}
}

func TestLexer_Indentation(t *testing.T) {
	input := "Vertical\n    Button\n        Label\n    Badge\n"
	tokens, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []TokenType{
		TokenLayout, TokenNewline,
		TokenIndent, TokenControl, TokenNewline,
		TokenIndent, TokenControl, TokenNewline,
		TokenDedent, TokenControl, TokenNewline,
		TokenDedent, TokenEOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexer_IndentBalance(t *testing.T) {
	// Every Indent must be matched by a Dedent, including at EOF with open
	// levels and with tabs mixed in.
	inputs := map[string]string{
		"simple":         "Card\n    Button\n",
		"deep stack":     "Card\n    Panel\n        Form\n            Button\n",
		"tab as four":    "Card\n\tButton\n\t\tLabel\n",
		"no trailing nl": "Card\n    Button",
		"blank lines":    "Card\n\n    Button\n\n        Label\n",
		"comment lines":  "Card\n    // note\n    Button\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			tokens, errs := Tokenize(input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			indents, dedents := 0, 0
			for _, tok := range tokens {
				switch tok.Type {
				case TokenIndent:
					indents++
				case TokenDedent:
					dedents++
				}
			}
			if indents != dedents {
				t.Errorf("indents = %d, dedents = %d, want balanced (%v)", indents, dedents, kinds(tokens))
			}
			if indents == 0 {
				t.Error("expected at least one indent level")
			}
		})
	}
}

func TestLexer_InconsistentIndent(t *testing.T) {
	input := "Card\n    Button\n  Badge\n"
	_, errs := Tokenize(input)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Kind != LexError {
		t.Errorf("kind = %v, want LexError", errs[0].Kind)
	}
}

func TestLexer_TableRows(t *testing.T) {
	input := "| Name | Role |\n|------|------|\n| Ada | Admin |\n"
	tokens, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []TokenType{
		TokenTableRow, TokenNewline,
		TokenTableSep, TokenNewline,
		TokenTableRow, TokenNewline,
		TokenEOF,
	}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: %s, want %s (%v)", i, got[i], want[i], got)
		}
	}
	if tokens[0].Literal != "| Name | Role |" {
		t.Errorf("row literal = %q", tokens[0].Literal)
	}
}

func TestLexer_TreeMarkers(t *testing.T) {
	input := "+ Branch\n- Leaf\n"
	tokens, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TokenBranch {
		t.Errorf("token 0 = %s, want Branch", tokens[0].Type)
	}
	// "- 5" would be a number; "- Leaf" is a marker.
	if tokens[3].Type != TokenLeaf {
		t.Errorf("token 3 = %s, want Leaf (%v)", tokens[3].Type, kinds(tokens))
	}
}

func TestLexer_DocAttr(t *testing.T) {
	input := "%title: Login Screen\n"
	tokens, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TokenDocAttr {
		t.Fatalf("type = %s, want DocAttr", tokens[0].Type)
	}
	if tokens[0].AttrName != "title" || tokens[0].AttrValue != "Login Screen" {
		t.Errorf("got %q=%q", tokens[0].AttrName, tokens[0].AttrValue)
	}
}

func TestLexer_Errors(t *testing.T) {
	type tc struct {
		input string
		count int
	}

	tests := map[string]tc{
		"unterminated string":  {input: `"never closed`, count: 1},
		"newline in string":    {input: "\"broken\nButton", count: 1},
		"unterminated comment": {input: "/* still open", count: 1},
		"stray character":      {input: "Button ^", count: 1},
		"empty binding":        {input: "? ", count: 1},
		"attribute no value":   {input: "width= ", count: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, errs := Tokenize(tt.input)
			if len(errs) != tt.count {
				t.Fatalf("got %d errors, want %d: %v", len(errs), tt.count, errs)
			}
			for _, e := range errs {
				if e.Kind != LexError {
					t.Errorf("kind = %v, want LexError", e.Kind)
				}
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, _ := Tokenize("Button\n    Badge")
	if tokens[0].Start.Line != 1 || tokens[0].Start.Column != 1 {
		t.Errorf("Button start = %s, want 1:1", tokens[0].Start)
	}
	// Indent precedes Badge on line 2.
	var badge Token
	for _, tok := range tokens {
		if tok.Literal == "Badge" {
			badge = tok
		}
	}
	if badge.Start.Line != 2 || badge.Start.Column != 5 {
		t.Errorf("Badge start = %s, want 2:5", badge.Start)
	}
}
