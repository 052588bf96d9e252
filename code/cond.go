package code

// Condition is the cursor for an if or else-if condition that is still
// open for And/Or chaining. Then closes the parenthesis and opens the body.
type Condition struct {
	s *session
	f *frame
}

// If starts a conditional at this block's depth.
func (b *Block) If(cond string) *Condition {
	const op = "If"
	if !b.s.enter(b.f, op) || !b.s.argument(op, "condition", cond) {
		return &Condition{s: b.s, f: deadFrame()}
	}
	header := newLine(tok(If), tok(Space), tok(LParen), Lit(cond))
	g := Group(header)
	b.f.body.add(g)
	f := &frame{kind: frameCondition, construct: g, header: header, parent: b}
	b.s.push(f)
	return &Condition{s: b.s, f: f}
}

// And appends " & expr".
func (c *Condition) And(expr string) *Condition {
	return c.join("And", And, expr)
}

// Or appends " | expr".
func (c *Condition) Or(expr string) *Condition {
	return c.join("Or", Or, expr)
}

// AndAlso appends the short-circuit " && expr".
func (c *Condition) AndAlso(expr string) *Condition {
	return c.join("AndAlso", AndAlso, expr)
}

// OrElse appends the short-circuit " || expr".
func (c *Condition) OrElse(expr string) *Condition {
	return c.join("OrElse", OrElse, expr)
}

func (c *Condition) join(op string, t Token, expr string) *Condition {
	if !c.s.enter(c.f, op) || !c.s.argument(op, "expression", expr) {
		return c
	}
	c.f.header.add(tok(Space), tok(t), tok(Space), Lit(expr))
	return c
}

// Then closes the condition and returns the body cursor, one level deeper
// than the if.
func (c *Condition) Then() *Block {
	if !c.s.enter(c.f, "Then") {
		return &Block{s: c.s, f: deadFrame()}
	}
	c.f.header.add(tok(RParen))
	body := newNest(1)
	g := c.f.construct
	g.add(newLine(tok(LBrace)), body)
	f := &frame{kind: frameIf, construct: g, body: body, parent: c.f.parent}
	c.s.replace(f)
	return &Block{s: c.s, f: f}
}

// ElseIf closes the if body and continues the chain with another
// condition. Else-if branches stay at the depth of the initial if.
func (b *Block) ElseIf(cond string) *Condition {
	const op = "ElseIf"
	if !b.s.enter(b.f, op) || !b.s.argument(op, "condition", cond) {
		return &Condition{s: b.s, f: deadFrame()}
	}
	if b.f.kind != frameIf {
		b.s.illegal(op, b.f, "else-if requires an open if body")
		return &Condition{s: b.s, f: deadFrame()}
	}
	g := b.f.construct
	header := newLine(tok(Else), tok(Space), tok(If), tok(Space), tok(LParen), Lit(cond))
	g.add(newLine(tok(RBrace)), header)
	f := &frame{kind: frameCondition, construct: g, header: header, parent: b.f.parent}
	b.s.replace(f)
	return &Condition{s: b.s, f: f}
}

// Else closes the if body and opens the final else body.
func (b *Block) Else() *Block {
	const op = "Else"
	if !b.s.enter(b.f, op) {
		return b
	}
	if b.f.kind != frameIf {
		b.s.illegal(op, b.f, "else requires an open if body")
		return b
	}
	return b.reopen(frameElse, tok(Else))
}

// EndIf closes the conditional and returns the cursor If was called on.
func (b *Block) EndIf() *Block {
	const op = "EndIf"
	if !b.s.enter(b.f, op) {
		return b
	}
	if b.f.kind != frameIf && b.f.kind != frameElse {
		b.s.illegal(op, b.f, "no conditional is open")
		return b
	}
	return b.close()
}
