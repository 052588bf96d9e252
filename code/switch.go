package code

// SwitchBlock is the cursor for a switch whose braces are open but which
// has no label yet.
type SwitchBlock struct {
	s *session
	f *frame
}

// Switch starts "switch (expr) {". Labels sit one level inside the braces
// and their bodies one level deeper.
func (b *Block) Switch(expr string) *SwitchBlock {
	const op = "Switch"
	if !b.s.enter(b.f, op) || !b.s.argument(op, "expression", expr) {
		return &SwitchBlock{s: b.s, f: deadFrame()}
	}
	inner := newNest(1)
	g := Group(newLine(parenthesized(Switch, Lit(expr))...), newLine(tok(LBrace)), inner)
	b.f.body.add(g)
	f := &frame{kind: frameSwitch, construct: g, body: inner, parent: b}
	b.s.push(f)
	return &SwitchBlock{s: b.s, f: f}
}

func (sw *SwitchBlock) Case(expr string) *Block {
	const op = "Case"
	if !sw.s.enter(sw.f, op) || !sw.s.argument(op, "expression", expr) {
		return &Block{s: sw.s, f: deadFrame()}
	}
	return openCase(sw.s, sw.f, expr)
}

func (sw *SwitchBlock) Default() *Block {
	if !sw.s.enter(sw.f, "Default") {
		return &Block{s: sw.s, f: deadFrame()}
	}
	return openDefault(sw.s, sw.f)
}

// EndSwitch closes an empty switch.
func (sw *SwitchBlock) EndSwitch() *Block {
	if !sw.s.enter(sw.f, "EndSwitch") {
		return &Block{s: sw.s, f: deadFrame()}
	}
	return closeSwitch(sw.s, sw.f)
}

// Case ends the current case body and opens the next label.
func (b *Block) Case(expr string) *Block {
	const op = "Case"
	if !b.s.enter(b.f, op) || !b.s.argument(op, "expression", expr) {
		return b
	}
	switch b.f.kind {
	case frameCase:
	case frameDefault:
		b.s.illegal(op, b.f, "case after default")
		return b
	default:
		b.s.illegal(op, b.f, "no switch is open")
		return b
	}
	b.s.pop()
	return openCase(b.s, b.f.sw, expr)
}

// Default ends the current case body and opens the default label.
func (b *Block) Default() *Block {
	const op = "Default"
	if !b.s.enter(b.f, op) {
		return b
	}
	switch b.f.kind {
	case frameCase:
	case frameDefault:
		b.s.illegal(op, b.f, "switch already has a default")
		return b
	default:
		b.s.illegal(op, b.f, "no switch is open")
		return b
	}
	b.s.pop()
	return openDefault(b.s, b.f.sw)
}

// EndSwitch ends the current label body and closes the switch, returning
// the cursor Switch was called on.
func (b *Block) EndSwitch() *Block {
	const op = "EndSwitch"
	if !b.s.enter(b.f, op) {
		return b
	}
	if b.f.kind != frameCase && b.f.kind != frameDefault {
		b.s.illegal(op, b.f, "no switch is open")
		return b
	}
	b.s.pop()
	return closeSwitch(b.s, b.f.sw)
}

func openCase(s *session, sw *frame, expr string) *Block {
	if sw.hasDefault {
		s.illegal("Case", sw, "case after default")
		return &Block{s: s, f: deadFrame()}
	}
	return openLabel(s, sw, frameCase, tok(Case), tok(Space), Lit(expr), tok(Colon))
}

func openDefault(s *session, sw *frame) *Block {
	if sw.hasDefault {
		s.illegal("Default", sw, "switch already has a default")
		return &Block{s: s, f: deadFrame()}
	}
	sw.hasDefault = true
	return openLabel(s, sw, frameDefault, tok(Default), tok(Colon))
}

func openLabel(s *session, sw *frame, kind frameKind, label ...*Node) *Block {
	if sw.needsGap {
		sw.body.add(newLine())
		sw.needsGap = false
	}
	body := newNest(1)
	sw.body.add(newLine(label...), body)
	f := &frame{kind: kind, construct: sw.construct, body: body, parent: sw.parent, sw: sw}
	s.push(f)
	return &Block{s: s, f: f}
}

func closeSwitch(s *session, sw *frame) *Block {
	sw.construct.add(newLine(tok(RBrace)))
	s.pop()
	return sw.parent
}
