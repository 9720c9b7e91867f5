package wire

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders a document back to canonical source: explicit wireframe
// envelope, four-space indentation, one element per line, modifiers and
// attributes in a stable order. Formatting a formatted document is a no-op.
func Format(doc *Document) string {
	w := &writer{}

	w.line(0, "wireframe "+doc.Style)
	for _, name := range sortedKeys(doc.Attributes) {
		w.line(1, "%"+name+": "+doc.Attributes[name])
	}
	for _, el := range doc.Elements {
		w.element(1, el)
	}
	for _, ds := range doc.DataSections {
		w.dataSection(1, ds)
	}
	w.line(0, "/wireframe")

	return w.sb.String()
}

type writer struct {
	sb strings.Builder
}

func (w *writer) line(depth int, text string) {
	w.sb.WriteString(strings.Repeat("    ", depth))
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
}

func (w *writer) element(depth int, node Node) {
	switch n := node.(type) {
	case *Layout:
		w.line(depth, n.Kind.String()+w.baseSuffix(&n.ElementBase, ""))
		w.children(depth+1, n.Children)

	case *Section:
		w.line(depth, n.Keyword+w.baseSuffix(&n.ElementBase, n.Title))
		w.children(depth+1, n.Children)

	case *Component:
		w.line(depth, "Component "+n.Name+w.baseSuffix(&n.ElementBase, ""))
		w.children(depth+1, n.Children)

	case *Repeat:
		w.line(depth, fmt.Sprintf("Repeat %d%s", n.Count, w.baseSuffix(&n.ElementBase, "")))
		w.children(depth+1, n.Body)

	case *Conditional:
		w.line(depth, "If "+n.Condition)
		w.children(depth+1, n.Then)
		if len(n.Else) > 0 {
			w.line(depth, "Else")
			w.children(depth+1, n.Else)
		}

	case *Control:
		w.control(depth, n)
	}
}

func (w *writer) children(depth int, nodes []Node) {
	for _, child := range nodes {
		w.element(depth, child)
	}
}

func (w *writer) control(depth int, ctl *Control) {
	head := ctl.Keyword
	if ctl.Keyword == "Dropdown" {
		for _, opt := range ctl.Options {
			head += " " + quote(opt)
		}
		head += w.baseSuffix(&ctl.ElementBase, "")
	} else {
		head += w.baseSuffix(&ctl.ElementBase, ctl.Text)
	}
	w.line(depth, head)

	switch ctl.Keyword {
	case "Table":
		w.table(depth+1, ctl.Columns, ctl.Rows)
	case "Tree":
		w.treeItems(depth+1, ctl.Items)
	default:
		w.children(depth+1, ctl.Children)
	}
}

// baseSuffix renders the shared element trailer: inline text, sigils,
// modifiers, then attributes, each in a stable order.
func (w *writer) baseSuffix(base *ElementBase, text string) string {
	var parts []string
	if text != "" {
		parts = append(parts, quote(text))
	}
	if base.ID != "" {
		parts = append(parts, ":"+base.ID)
	}
	if base.Binding != "" {
		parts = append(parts, "?"+base.Binding)
	}
	if base.Navigation != "" {
		parts = append(parts, "@"+base.Navigation)
	}
	if base.Icon != "" {
		parts = append(parts, "$"+base.Icon)
	}
	parts = append(parts, modifierNames(base.Modifiers)...)
	for _, name := range sortedKeys(base.Attributes) {
		parts = append(parts, name+"="+attrSource(base.Attributes[name]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (w *writer) table(depth int, columns []string, rows [][]string) {
	if len(columns) > 0 {
		w.line(depth, "| "+strings.Join(columns, " | ")+" |")
		seps := make([]string, len(columns))
		for i := range seps {
			seps[i] = strings.Repeat("-", len(columns[i])+2)
		}
		w.line(depth, "|"+strings.Join(seps, "|")+"|")
	}
	for _, row := range rows {
		w.line(depth, "| "+strings.Join(row, " | ")+" |")
	}
}

func (w *writer) treeItems(depth int, items []*TreeItem) {
	for _, item := range items {
		marker := "-"
		if item.Branch {
			marker = "+"
		}
		w.line(depth, marker+" "+item.Text)
		w.treeItems(depth+1, item.Children)
	}
}

func (w *writer) dataSection(depth int, ds *DataSection) {
	head := ds.Keyword
	if ds.Name != "" {
		if strings.ContainsAny(ds.Name, " \t") {
			head += " " + quote(ds.Name)
		} else {
			head += " " + ds.Name
		}
	}
	w.line(depth, head)
	w.table(depth+1, nil, ds.Rows)
}

// modifierNames lists the set modifiers in declaration order.
func modifierNames(m Modifiers) []string {
	var names []string
	for _, entry := range []struct {
		set  bool
		name string
	}{
		{m.Primary, "primary"},
		{m.Secondary, "secondary"},
		{m.Danger, "danger"},
		{m.Success, "success"},
		{m.Warning, "warning"},
		{m.Required, "required"},
		{m.Disabled, "disabled"},
		{m.Checked, "checked"},
		{m.Selected, "selected"},
		{m.Readonly, "readonly"},
		{m.Multiline, "multiline"},
		{m.Rounded, "rounded"},
		{m.Small, "small"},
		{m.Large, "large"},
		{m.Flat, "flat"},
	} {
		if entry.set {
			names = append(names, entry.name)
		}
	}
	return names
}

// attrSource renders an attribute value as it would be written in source.
// Strings that would coerce to something else, or that contain spaces, are
// quoted to round-trip.
func attrSource(v AttrValue) string {
	if v.Kind != AttrString {
		return v.String()
	}
	s := v.Str
	if s == "" || s == "true" || s == "false" || strings.ContainsAny(s, " \t\"'") || isNumeric(s) {
		return quote(s)
	}
	return s
}

func isNumeric(s string) bool {
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && i == 0:
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return s != "" && s != "-"
}

// quote wraps s in double quotes with backslash escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
