package wire

import "strings"

// parseControl parses a control element. Most controls are one line; Table,
// Tree, and Dropdown carry their own nested productions.
func (p *Parser) parseControl() Node {
	tok := p.current()
	ctl := NewControl(tok.Literal, tok.Start)
	p.advance()

	if ctl.Keyword == "Dropdown" {
		// Inline strings are the option list, not a label.
		p.parseModifiers(&ctl.ElementBase, nil, &ctl.Options)
	} else {
		p.parseModifiers(&ctl.ElementBase, &ctl.Text, nil)
	}

	switch ctl.Keyword {
	case "Table":
		p.parseTableBlock(ctl)
	case "Tree":
		if p.beginBlock() {
			ctl.Items = p.parseTreeItems()
			p.endBlock("Tree")
		}
	default:
		ctl.Children = p.parseBlock(ctl.Keyword)
	}

	ctl.EndPos = p.prevEnd()
	return ctl
}

// parseTableBlock parses the indented row block of a Table. A separator row
// directly under the first row promotes that row to the header.
func (p *Parser) parseTableBlock(ctl *Control) {
	if !p.beginBlock() {
		return
	}

	sawSep := false
	var rows [][]string
	for !p.at(TokenDedent) && !p.at(TokenEOF) {
		tok := p.current()
		switch tok.Type {
		case TokenNewline:
			p.advance()
		case TokenTableRow:
			rows = append(rows, splitTableRow(tok.Literal))
			p.advance()
		case TokenTableSep:
			if len(rows) == 1 {
				sawSep = true
			}
			p.advance()
		default:
			p.errors.AddErrorf(SyntaxError, tok.Start,
				"expected table row, got %s", tok.Type)
			p.synchronize()
		}
	}

	if sawSep && len(rows) > 0 {
		ctl.Columns = rows[0]
		ctl.Rows = rows[1:]
	} else {
		ctl.Rows = rows
	}

	p.endBlock("Table")
}

// splitTableRow splits a | row into trimmed cells, dropping the empty cells
// the outer pipes produce at both ends.
func splitTableRow(raw string) []string {
	parts := strings.Split(raw, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// parseTreeItems parses one indentation level of +/- tree items. A nested
// indent attaches to the most recent item as its children.
func (p *Parser) parseTreeItems() []*TreeItem {
	var items []*TreeItem
	for {
		if p.at(TokenNewline) {
			if p.peek().Type == TokenIndent && len(items) > 0 {
				p.advance()
				p.advance()
				last := items[len(items)-1]
				last.Children = p.parseTreeItems()
				if p.at(TokenDedent) {
					p.advance()
				}
				continue
			}
			p.advance()
			continue
		}

		tok := p.current()
		switch tok.Type {
		case TokenBranch, TokenLeaf:
			p.advance()
			items = append(items, &TreeItem{
				Text:   p.readLineText(),
				Branch: tok.Type == TokenBranch,
				Start:  tok.Start,
			})
		case TokenDedent, TokenEOF:
			return items
		default:
			p.errors.AddErrorf(SyntaxError, tok.Start,
				"expected tree item marker, got %s", tok.Type)
			p.synchronize()
		}
	}
}

// readLineText joins the remaining word-like tokens on the current line.
// Keyword tokens count as plain words here; tree item text is free-form.
func (p *Parser) readLineText() string {
	var words []string
	for {
		switch p.current().Type {
		case TokenString, TokenIdent, TokenNumber, TokenBool,
			TokenLayout, TokenSection, TokenControl, TokenComponent,
			TokenRepeat, TokenIf, TokenElse, TokenData:
			words = append(words, p.current().Literal)
			p.advance()
		default:
			return strings.Join(words, " ")
		}
	}
}

// parseDataSection parses a named tabular metadata block. Rows are stored
// raw; structural interpretation belongs to the caller.
func (p *Parser) parseDataSection() *DataSection {
	tok := p.current()
	ds := NewDataSection(tok.Literal, tok.Start)
	p.advance()

	if p.at(TokenString) || p.at(TokenIdent) {
		ds.Name = p.current().Literal
		p.advance()
	}

	if p.beginBlock() {
		for !p.at(TokenDedent) && !p.at(TokenEOF) {
			t := p.current()
			switch t.Type {
			case TokenNewline, TokenTableSep:
				p.advance()
			case TokenTableRow:
				ds.Rows = append(ds.Rows, splitTableRow(t.Literal))
				p.advance()
			default:
				p.errors.AddErrorf(SyntaxError, t.Start,
					"expected table row in %s section, got %s", ds.Keyword, t.Type)
				p.synchronize()
			}
		}
		p.endBlock(ds.Keyword)
	}

	ds.EndPos = p.prevEnd()
	return ds
}
