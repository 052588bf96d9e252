package code

// For opens "for (header) {".
func (b *Block) For(header string) *Block {
	return b.loop("For", For, header)
}

// Foreach opens "foreach (header) {".
func (b *Block) Foreach(header string) *Block {
	return b.loop("Foreach", Foreach, header)
}

// ForeachIn opens "foreach (typ name in iterable) {".
func (b *Block) ForeachIn(typ, name, iterable string) *Block {
	const op = "ForeachIn"
	if !b.s.enter(b.f, op) ||
		!b.s.argument(op, "type", typ) ||
		!b.s.argument(op, "name", name) ||
		!b.s.argument(op, "iterable", iterable) {
		return b
	}
	header := Group(Lit(typ), tok(Space), Lit(name), tok(Space), tok(In), tok(Space), Lit(iterable))
	return b.open(frameLoop, parenthesized(Foreach, header)...)
}

// While opens "while (header) {". On a do body it instead closes the body
// with "} while (header);" and returns the cursor Do was called on; use
// WhileLoop to nest a while loop directly inside a do body.
func (b *Block) While(header string) *Block {
	const op = "While"
	if b.f.kind != frameDo {
		return b.loop(op, While, header)
	}
	if !b.s.enter(b.f, op) || !b.s.argument(op, "condition", header) {
		return b
	}
	closing := []*Node{tok(RBrace), tok(Space)}
	closing = append(closing, parenthesized(While, Lit(header))...)
	closing = append(closing, tok(Semicolon))
	b.f.construct.add(newLine(closing...))
	b.s.pop()
	return b.f.parent
}

// WhileLoop always opens "while (header) {".
func (b *Block) WhileLoop(header string) *Block {
	return b.loop("WhileLoop", While, header)
}

// Do opens "do {". The body is closed by While.
func (b *Block) Do() *Block {
	if !b.s.enter(b.f, "Do") {
		return b
	}
	return b.open(frameDo, tok(Do))
}

// EndCycle closes a for, foreach or while loop and returns the cursor the
// loop was opened from.
func (b *Block) EndCycle() *Block {
	const op = "EndCycle"
	if !b.s.enter(b.f, op) {
		return b
	}
	switch b.f.kind {
	case frameLoop:
		return b.close()
	case frameDo:
		b.s.illegal(op, b.f, "a do body is closed by While")
	default:
		b.s.illegal(op, b.f, "no loop is open")
	}
	return b
}

// ExitCycle is EndCycle.
func (b *Block) ExitCycle() *Block {
	return b.EndCycle()
}

func (b *Block) loop(op string, keyword Token, header string) *Block {
	if !b.s.enter(b.f, op) || !b.s.argument(op, "header", header) {
		return b
	}
	return b.open(frameLoop, parenthesized(keyword, Lit(header))...)
}
