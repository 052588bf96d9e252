package code

import (
	"io"
	"strings"
)

type Option func(*options)

type options struct {
	unit    IndentUnit
	newline string
}

// WithIndent sets the string added per nesting level.
func WithIndent(unit IndentUnit) Option {
	return func(o *options) {
		o.unit = unit
	}
}

// WithNewline sets the line separator, "\n" by default.
func WithNewline(newline string) Option {
	return func(o *options) {
		o.newline = newline
	}
}

// Code is the root of a statement tree under construction. It embeds the
// root *Block, so every body operation is available on it directly.
//
// The first failing operation is recorded and every later call becomes a
// no-op; Build, Render and Err report that failure.
type Code struct {
	*Block
	s *session
}

func New(opts ...Option) *Code {
	o := options{unit: FourSpaces, newline: "\n"}
	for _, opt := range opts {
		opt(&o)
	}
	root := newNest(0)
	root.sealed = true
	s := &session{opts: o, root: root}
	f := &frame{kind: frameRoot, body: s.root}
	s.stack = []*frame{f}
	return &Code{Block: &Block{s: s, f: f}, s: s}
}

// Err returns the first error recorded on this tree.
func (c *Code) Err() error {
	return c.s.err
}

// HasCode reports whether anything was appended.
func (c *Code) HasCode() bool {
	return len(c.s.root.children) > 0
}

func (c *Code) Build() (string, error) {
	var sb strings.Builder
	if err := c.BuildCode(&sb, ""); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildCode renders into sb, prefixing every non-empty line with
// indentPrefix. Nothing is written if the tree is in error or a construct
// is still open.
func (c *Code) BuildCode(sb *strings.Builder, indentPrefix string) error {
	if err := c.check("Build"); err != nil {
		return err
	}
	r := &renderer{sb: sb, unit: c.s.opts.unit, newline: c.s.opts.newline, prefix: indentPrefix}
	r.render(c.s.root, 0)
	return nil
}

func (c *Code) Render(w io.Writer) error {
	text, err := c.Build()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// String renders the tree, or returns "" if it cannot be built.
func (c *Code) String() string {
	text, _ := c.Build()
	return text
}

func (c *Code) check(op string) error {
	s := c.s
	if s.err != nil {
		return s.err
	}
	if s.consumed {
		return &StateError{Op: op, Reason: "code was embedded into another tree"}
	}
	if top := s.top(); top.kind != frameRoot {
		return &StateError{Op: op, State: top.kind.String(), Reason: "construct is still open"}
	}
	return nil
}
