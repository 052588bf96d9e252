package code

// Try opens "try {" and returns the try body.
func (b *Block) Try() *Block {
	if !b.s.enter(b.f, "Try") {
		return b
	}
	return b.open(frameTry, tok(Try))
}

// Catch ends the try body or the previous catch body and opens
// "catch (typ name)". name may be empty. Any number of catch clauses may
// follow a try; their types are not checked for duplicates.
func (b *Block) Catch(typ, name string) *Block {
	const op = "Catch"
	if !b.s.enter(b.f, op) || !b.s.argument(op, "type", typ) || !b.s.inline(op, "name", name) {
		return b
	}
	if !b.canCatch(op) {
		return b
	}
	clause := Lit(typ)
	if name != "" {
		clause = Group(Lit(typ), tok(Space), Lit(name))
	}
	return b.reopen(frameCatch, parenthesized(Catch, clause)...)
}

// CatchAll opens a bare "catch" clause.
func (b *Block) CatchAll() *Block {
	const op = "CatchAll"
	if !b.s.enter(b.f, op) || !b.canCatch(op) {
		return b
	}
	return b.reopen(frameCatch, tok(Catch))
}

func (b *Block) canCatch(op string) bool {
	switch b.f.kind {
	case frameTry, frameCatch:
		return true
	case frameFinally:
		b.s.illegal(op, b.f, "catch after finally")
	default:
		b.s.illegal(op, b.f, "no try is open")
	}
	return false
}

// Finally ends the try or catch body and opens "finally {".
func (b *Block) Finally() *Block {
	const op = "Finally"
	if !b.s.enter(b.f, op) {
		return b
	}
	switch b.f.kind {
	case frameTry, frameCatch:
	case frameFinally:
		b.s.illegal(op, b.f, "try already has a finally")
		return b
	default:
		b.s.illegal(op, b.f, "no try is open")
		return b
	}
	return b.reopen(frameFinally, tok(Finally))
}

// EndTry closes the try statement and returns the cursor Try was called on.
func (b *Block) EndTry() *Block {
	const op = "EndTry"
	if !b.s.enter(b.f, op) {
		return b
	}
	switch b.f.kind {
	case frameTry, frameCatch, frameFinally:
		return b.close()
	}
	b.s.illegal(op, b.f, "no try is open")
	return b
}
