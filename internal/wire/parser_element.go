package wire

import "strconv"

// elementParsers dispatches each grammar category to its sub-rule.
// Populated in init to avoid an initialization cycle with the rules.
var elementParsers map[TokenType]func(*Parser) Node

func init() {
	elementParsers = map[TokenType]func(*Parser) Node{
		TokenLayout:    (*Parser).parseLayout,
		TokenSection:   (*Parser).parseSection,
		TokenControl:   (*Parser).parseControl,
		TokenComponent: (*Parser).parseComponent,
		TokenRepeat:    (*Parser).parseRepeat,
		TokenIf:        (*Parser).parseConditional,
	}
}

// parseElement dispatches on the current token's grammar category.
// Returns nil (after recording an error) when no rule applies.
func (p *Parser) parseElement() Node {
	rule, ok := elementParsers[p.current().Type]
	if !ok {
		p.errors.AddErrorf(SyntaxError, p.current().Start,
			"unexpected %s, expected an element", p.current().Type)
		return nil
	}
	return rule(p)
}

// parseModifiers runs the shared modifier/attribute loop. It consumes, in any
// order: :id, ?binding, @navigation, $icon, bare modifier keywords, and
// key=value attributes, terminating at the end of the line.
//
// text receives the first inline string literal (label/title); list, when
// non-nil, collects every string instead (Dropdown inline options).
func (p *Parser) parseModifiers(base *ElementBase, text *string, list *[]string) {
	for {
		tok := p.current()
		switch tok.Type {
		case TokenID:
			if base.ID != "" {
				p.errors.AddErrorf(SemanticError, tok.Start,
					"element already has id %q", base.ID)
			} else {
				base.ID = tok.Literal
				p.declareID(tok.Literal, tok.Start)
			}
			p.advance()

		case TokenBinding:
			base.Binding = tok.Literal
			p.advance()

		case TokenNavigation:
			base.Navigation = tok.Literal
			p.advance()

		case TokenIcon:
			base.Icon = tok.Literal
			p.advance()

		case TokenString:
			switch {
			case list != nil:
				*list = append(*list, tok.Literal)
			case text != nil && *text == "":
				*text = tok.Literal
			default:
				p.errors.AddErrorf(SyntaxError, tok.Start,
					"unexpected string literal %q", tok.Literal)
			}
			p.advance()

		case TokenAttribute:
			base.Attributes[tok.AttrName] = coerceAttr(tok)
			p.advance()

		case TokenIdent:
			if !base.Modifiers.Set(tok.Literal) {
				p.errors.AddErrorf(SemanticError, tok.Start,
					"unknown modifier %q", tok.Literal)
			}
			p.advance()

		case TokenError:
			p.advance()

		default:
			base.EndPos = p.prevEnd()
			return
		}
	}
}

// coerceAttr coerces an attribute value in order number, boolean, string.
// Quoted values skip coercion entirely and stay strings.
func coerceAttr(tok Token) AttrValue {
	if tok.Quoted {
		return StringAttr(tok.AttrValue)
	}
	if n, err := strconv.ParseFloat(tok.AttrValue, 64); err == nil {
		return NumberAttr(n)
	}
	if tok.AttrValue == "true" {
		return BoolAttr(true)
	}
	if tok.AttrValue == "false" {
		return BoolAttr(false)
	}
	return StringAttr(tok.AttrValue)
}

// beginBlock consumes the Newline+Indent that opens an indented child block.
// Returns false (consuming nothing) when the element has no block.
func (p *Parser) beginBlock() bool {
	if p.at(TokenNewline) && p.peek().Type == TokenIndent {
		p.advance()
		p.advance()
		return true
	}
	return false
}

// endBlock consumes the Dedent that closes a block, then an optional explicit
// close token. The close is consumed only when its keyword names the opener;
// a mismatched close is left for an enclosing block, and one nobody claims is
// reported at the document level. A missing close at end of input is fine.
func (p *Parser) endBlock(openKeyword string) {
	if p.at(TokenDedent) {
		p.advance()
	}
	if p.at(TokenClose) && p.current().CloseKeyword == openKeyword {
		p.advance()
	}
}

// parseBlock parses an optional indented child-element block followed by an
// optional explicit close for openKeyword.
func (p *Parser) parseBlock(openKeyword string) []Node {
	var children []Node
	if !p.beginBlock() {
		p.endBlock(openKeyword) // inline close like `Card "X" /Card`
		return nil
	}

	for !p.at(TokenDedent) && !p.at(TokenEOF) {
		if p.at(TokenNewline) {
			p.advance()
			continue
		}
		if p.at(TokenClose) {
			break
		}
		el := p.parseElement()
		if el != nil {
			children = append(children, el)
		} else {
			p.synchronize()
		}
	}

	p.endBlock(openKeyword)
	return children
}

// parseLayout parses one of the six layout containers.
func (p *Parser) parseLayout() Node {
	tok := p.current()
	lay := NewLayout(layoutKindNames[tok.Literal], tok.Start)
	p.advance()
	p.parseModifiers(&lay.ElementBase, nil, nil)
	lay.Children = p.parseBlock(tok.Literal)
	lay.EndPos = p.prevEnd()
	return lay
}

// parseSection parses a named grouping container such as Card or Header.
func (p *Parser) parseSection() Node {
	tok := p.current()
	sec := NewSection(tok.Literal, tok.Start)
	p.advance()
	p.parseModifiers(&sec.ElementBase, &sec.Title, nil)
	sec.Children = p.parseBlock(tok.Literal)
	sec.EndPos = p.prevEnd()
	return sec
}

// parseComponent parses `Component Name` with an indented body.
func (p *Parser) parseComponent() Node {
	tok := p.current()
	p.advance()

	name := ""
	switch p.current().Type {
	case TokenIdent, TokenString:
		name = p.current().Literal
		p.advance()
	default:
		p.errors.AddError(SyntaxError, p.current().Start, "expected component name")
	}

	comp := NewComponent(name, tok.Start)
	p.parseModifiers(&comp.ElementBase, nil, nil)
	comp.Children = p.parseBlock("Component")
	comp.EndPos = p.prevEnd()
	return comp
}

// parseRepeat parses `Repeat n` with either one inline child or an indented
// body block.
func (p *Parser) parseRepeat() Node {
	tok := p.current()
	p.advance()

	count := 1
	if p.at(TokenNumber) {
		n, err := strconv.ParseFloat(p.current().Literal, 64)
		if err != nil || n < 0 || n != float64(int(n)) {
			p.errors.AddErrorf(SemanticError, p.current().Start,
				"invalid repeat count %q", p.current().Literal)
		} else {
			count = int(n)
		}
		p.advance()
	} else {
		p.errors.AddError(SyntaxError, p.current().Start, "Repeat requires a count")
	}

	rep := NewRepeat(count, tok.Start)
	p.parseModifiers(&rep.ElementBase, nil, nil)

	if _, inline := elementParsers[p.current().Type]; inline {
		// Inline body on the same line: Repeat 3 Button "Go"
		if el := p.parseElement(); el != nil {
			rep.Body = append(rep.Body, el)
		}
	} else {
		rep.Body = p.parseBlock("Repeat")
	}
	rep.EndPos = p.prevEnd()
	return rep
}

// parseConditional parses `If <condition>` with an optional Else block.
func (p *Parser) parseConditional() Node {
	tok := p.current()
	p.advance()

	condition := ""
	for {
		t := p.current()
		switch t.Type {
		case TokenBinding:
			condition = joinCondition(condition, "?"+t.Literal)
		case TokenIdent, TokenBool, TokenNumber, TokenString:
			condition = joinCondition(condition, t.Literal)
		default:
			if condition == "" {
				p.errors.AddError(SyntaxError, t.Start, "If requires a condition")
			}
			cond := NewConditional(condition, tok.Start)
			cond.Then = p.parseBlock("If")
			if p.at(TokenElse) {
				p.advance()
				cond.Else = p.parseBlock("Else")
			}
			cond.EndPos = p.prevEnd()
			return cond
		}
		p.advance()
	}
}

func joinCondition(prefix, word string) string {
	if prefix == "" {
		return word
	}
	return prefix + " " + word
}
