package wire

// Parser builds a Document AST from a token stream.
//
// All parser state is explicit: the cursor, the document-wide id set, and the
// error list live on this value, keeping each grammar rule independently
// testable. The parser never aborts on a structural problem; it records an
// error, resynchronizes, and keeps going, so a best-effort document is always
// returned.
type Parser struct {
	tokens []Token
	pos    int
	errors *ErrorList
	ids    map[string]Position // first declaration site per id
}

// NewParser creates a Parser for the given token stream. The stream must be
// EOF-terminated, as produced by Tokenize.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 {
		tokens = []Token{{Type: TokenEOF, Start: Position{Line: 1, Column: 1}}}
	}
	return &Parser{
		tokens: tokens,
		errors: NewErrorList(),
		ids:    map[string]Position{},
	}
}

// ParseSource tokenizes and parses source in one step. Lex and parse errors
// are returned together.
func ParseSource(source string) (*Document, []*Error) {
	tokens, lexErrs := Tokenize(source)
	p := NewParser(tokens)
	doc := p.ParseDocument()
	all := append([]*Error{}, lexErrs...)
	all = append(all, p.Errors().Errors()...)
	return doc, all
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// current returns the token at the cursor.
func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

// peek returns the token after the cursor, or the trailing EOF.
func (p *Parser) peek() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// advance moves the cursor forward, stopping at EOF.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// at reports whether the current token has the given type.
func (p *Parser) at(typ TokenType) bool {
	return p.current().Type == typ
}

// skipNewlines consumes any newline tokens.
func (p *Parser) skipNewlines() {
	for p.at(TokenNewline) {
		p.advance()
	}
}

// prevEnd returns the end position of the last consumed token.
func (p *Parser) prevEnd() Position {
	if p.pos == 0 {
		return p.current().Start
	}
	return p.tokens[p.pos-1].End
}

// synchronize skips forward to the next safe point (line or block boundary)
// so parsing can continue after an error.
func (p *Parser) synchronize() {
	for !p.at(TokenEOF) && !p.at(TokenNewline) && !p.at(TokenDedent) {
		p.advance()
	}
	if p.at(TokenNewline) {
		p.advance()
	}
}

// declareID records an element id, reporting a duplicate exactly once per
// repeated id. The id stays on both elements (set membership is retained).
func (p *Parser) declareID(id string, pos Position) {
	if first, exists := p.ids[id]; exists {
		p.errors.AddErrorf(SemanticError, pos,
			"duplicate id %q (first declared at %s)", id, first)
		return
	}
	p.ids[id] = pos
}

// ParseDocument parses the whole token stream into a Document.
//
// A document is either wrapped in `wireframe <style>` ... `/wireframe`, or a
// bare element list (tolerant legacy mode with the implicit clean style).
func (p *Parser) ParseDocument() *Document {
	doc := NewDocument()
	doc.Start = p.current().Start

	p.skipNewlines()

	hasHeader := false
	if p.at(TokenWireframe) {
		hasHeader = true
		p.advance()
		switch p.current().Type {
		case TokenIdent, TokenString:
			style := p.current().Literal
			if KnownStyles[style] {
				doc.Style = style
			} else {
				p.errors.AddErrorf(SemanticError, p.current().Start,
					"unrecognized style %q, using %q", style, DefaultStyle)
			}
			p.advance()
		case TokenNewline, TokenEOF:
			// Style absent: keep the default.
		default:
			p.errors.AddErrorf(SyntaxError, p.current().Start,
				"expected style name after wireframe, got %s", p.current().Type)
			p.synchronize()
		}
	}

	// Body. Indent/dedent between the envelope and its contents is nesting
	// noise at this level and is consumed without ceremony.
	for {
		p.skipNewlines()
		switch p.current().Type {
		case TokenEOF:
			doc.EndPos = p.current().Start
			return doc

		case TokenIndent, TokenDedent:
			p.advance()

		case TokenDocAttr:
			tok := p.current()
			doc.Attributes[tok.AttrName] = tok.AttrValue
			p.advance()

		case TokenData:
			doc.DataSections = append(doc.DataSections, p.parseDataSection())

		case TokenClose:
			tok := p.current()
			p.advance()
			if tok.CloseKeyword == "wireframe" {
				if !hasHeader {
					p.errors.AddError(SyntaxError, tok.Start,
						"/wireframe without a wireframe header")
				}
				doc.EndPos = tok.End
				// Anything after the envelope is trailing junk; report once.
				p.skipNewlines()
				if !p.at(TokenEOF) {
					p.errors.AddErrorf(SyntaxError, p.current().Start,
						"unexpected content after /wireframe")
				}
				return doc
			}
			p.errors.AddErrorf(SyntaxError, tok.Start,
				"unexpected close %s, no open %s block", tok.Literal, tok.CloseKeyword)

		default:
			el := p.parseElement()
			if el != nil {
				doc.Elements = append(doc.Elements, el)
			} else {
				p.synchronize()
			}
		}
	}
}
