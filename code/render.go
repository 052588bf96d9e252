package code

import "strings"

type renderer struct {
	sb      *strings.Builder
	unit    IndentUnit
	newline string
	prefix  string
	lines   int
}

// render walks n depth first. depth is the nesting level of the enclosing
// nest node; the indentation prefix is only computed here, per line.
func (r *renderer) render(n *Node, depth int) {
	switch n.kind {
	case literalNode:
		r.sb.WriteString(n.text)
	case groupNode:
		for _, c := range n.children {
			r.render(c, depth)
		}
	case nestNode:
		for _, c := range n.children {
			r.render(c, depth+n.depth)
		}
	case lineNode:
		if r.lines > 0 {
			r.sb.WriteString(r.newline)
		}
		r.lines++
		if !r.hasText(n) {
			return
		}
		r.writeIndent(depth)
		for _, c := range n.children {
			r.render(c, depth)
		}
	}
}

func (r *renderer) writeIndent(depth int) {
	r.sb.WriteString(r.prefix)
	r.sb.WriteString(Tabs(r.unit, depth).String())
}

func (r *renderer) hasText(n *Node) bool {
	for _, c := range n.children {
		if c.kind == literalNode && c.text != "" {
			return true
		}
		if c.kind != literalNode && r.hasText(c) {
			return true
		}
	}
	return false
}
