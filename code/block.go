package code

import "strings"

// Block is the cursor for one statement body: the root of a Code, or the
// body of an if, else, case, default, try, catch, finally or loop region.
// Which transitions are legal depends on the region kind; an illegal one
// is recorded as a *StateError on the owning Code.
type Block struct {
	s *session
	f *frame
}

func deadFrame() *frame {
	return &frame{retired: true}
}

func (b *Block) line(parts ...*Node) {
	b.f.body.add(newLine(parts...))
}

// Kind names the region this cursor appends to, e.g. "case body".
func (b *Block) Kind() string {
	return b.f.kind.String()
}

// AddLine appends one statement line verbatim. An empty line renders as a
// blank line; text with line breaks is split into lines at the current depth.
func (b *Block) AddLine(line string) *Block {
	if !b.s.enter(b.f, "AddLine") {
		return b
	}
	for _, l := range splitLines(line) {
		b.line(Lit(l))
	}
	return b
}

func (b *Block) AddLines(lines ...string) *Block {
	for _, l := range lines {
		b.AddLine(l)
	}
	return b
}

// AddVariable appends "typ name = value;", or "typ name;" when value is
// empty.
func (b *Block) AddVariable(typ, name, value string) *Block {
	const op = "AddVariable"
	if !b.s.enter(b.f, op) ||
		!b.s.argument(op, "type", typ) ||
		!b.s.argument(op, "name", name) ||
		!b.s.inline(op, "value", value) {
		return b
	}
	parts := []*Node{Lit(typ), tok(Space), Lit(name)}
	if value != "" {
		parts = append(parts, tok(Space), tok(Assign), tok(Space), Lit(value))
	}
	parts = append(parts, tok(Semicolon))
	b.line(parts...)
	return b
}

// AddCode appends a multi-line fragment. Each line of text becomes its own
// line at the current depth and keeps its own leading whitespace.
func (b *Block) AddCode(text string) *Block {
	if !b.s.enter(b.f, "AddCode") {
		return b
	}
	lines := splitLines(text)
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, l := range lines {
		b.line(Lit(l))
	}
	return b
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// AddNode appends n as one line at the current depth. n is a finished
// subtree: it must not belong to another tree, its literals must not
// contain line breaks, and once added it no longer accepts children.
func (b *Block) AddNode(n *Node) *Block {
	const op = "AddNode"
	if !b.s.enter(b.f, op) {
		return b
	}
	switch {
	case n == nil:
		b.s.fail(&ArgumentError{Op: op, Arg: "node"})
	case n.parent != nil || n.sealed:
		b.s.illegal(op, b.f, "node already belongs to a tree")
	case hasLineBreak(n):
		b.s.fail(&ArgumentError{Op: op, Arg: "node", Reason: "must not contain a line break"})
	default:
		b.line(n)
	}
	return b
}

func hasLineBreak(n *Node) bool {
	if n.kind == literalNode {
		return strings.ContainsAny(n.text, "\r\n")
	}
	for _, c := range n.children {
		if hasLineBreak(c) {
			return true
		}
	}
	return false
}

// Embed moves a finished tree into this body. sub is consumed: any later
// operation on it fails.
func (b *Block) Embed(sub *Code) *Block {
	const op = "Embed"
	if !b.s.enter(b.f, op) {
		return b
	}
	if sub == nil {
		b.s.fail(&ArgumentError{Op: op, Arg: "code"})
		return b
	}
	if sub.s == b.s {
		b.s.illegal(op, b.f, "cannot embed a tree into itself")
		return b
	}
	if err := sub.check(op); err != nil {
		b.s.fail(err)
		return b
	}
	sub.s.consumed = true
	b.f.body.add(sub.s.root)
	return b
}

// Return appends "return expr;", or "return;" for an empty expr.
func (b *Block) Return(expr string) *Block {
	const op = "Return"
	if !b.s.enter(b.f, op) || !b.s.inline(op, "expression", expr) {
		return b
	}
	if expr == "" {
		b.line(tok(Return), tok(Semicolon))
	} else {
		b.line(tok(Return), tok(Space), Lit(expr), tok(Semicolon))
	}
	return b
}

// Comment appends "// text", one comment line per line of text.
func (b *Block) Comment(text string) *Block {
	if !b.s.enter(b.f, "Comment") {
		return b
	}
	for _, l := range splitLines(text) {
		b.line(Lit("// " + l))
	}
	return b
}

// Break appends "break;". In a case or default body it also ends the
// section, so the next label is set off by a blank line.
func (b *Block) Break() *Block {
	if !b.s.enter(b.f, "Break") {
		return b
	}
	b.line(tok(Break), tok(Semicolon))
	if b.f.kind == frameCase || b.f.kind == frameDefault {
		b.f.sw.needsGap = true
	}
	return b
}

// open appends a new construct "header {" ... and returns its body cursor.
func (b *Block) open(kind frameKind, header ...*Node) *Block {
	body := newNest(1)
	g := Group(newLine(header...), newLine(tok(LBrace)), body)
	b.f.body.add(g)
	f := &frame{kind: kind, construct: g, body: body, parent: b}
	b.s.push(f)
	return &Block{s: b.s, f: f}
}

// reopen closes the current region and continues the same construct with
// a sibling region, e.g. "} else {".
func (b *Block) reopen(kind frameKind, header ...*Node) *Block {
	g := b.f.construct
	body := newNest(1)
	g.add(newLine(tok(RBrace)), newLine(header...), newLine(tok(LBrace)), body)
	f := &frame{kind: kind, construct: g, body: body, parent: b.f.parent}
	b.s.replace(f)
	return &Block{s: b.s, f: f}
}

// close ends the construct with "}" and hands back the opening cursor.
func (b *Block) close() *Block {
	b.f.construct.add(newLine(tok(RBrace)))
	b.s.pop()
	return b.f.parent
}

func parenthesized(keyword Token, expr ...*Node) []*Node {
	parts := []*Node{tok(keyword), tok(Space), tok(LParen)}
	parts = append(parts, expr...)
	return append(parts, tok(RParen))
}
