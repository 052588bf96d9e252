package decl

import (
	"strings"
	"sync"

	"github.com/dhamidi/scribe/code"
)

// Writer formats declarations. The first token written after Clear takes
// the current indentation; later tokens on the same line are separated by
// a single space. Clear must run before each independent declaration
// line, which EndLine does.
type Writer struct {
	mu      sync.Mutex
	sb      strings.Builder
	unit    code.IndentUnit
	newline string
	depth   int
	started bool

	// inInterface makes bodiless methods render as signatures.
	inInterface bool
	className   string
}

func NewWriter(unit code.IndentUnit, newline string) *Writer {
	if unit == "" {
		unit = code.FourSpaces
	}
	if newline == "" {
		newline = "\n"
	}
	return &Writer{unit: unit, newline: newline}
}

// Clear resets the first-token state so the next token is indented.
func (w *Writer) Clear() {
	w.started = false
}

func (w *Writer) prefix() string {
	return code.Tabs(w.unit, w.depth).String()
}

// Token writes one header token.
func (w *Writer) Token(s string) *Writer {
	if s == "" {
		return w
	}
	if w.started {
		w.sb.WriteString(" ")
	} else {
		w.sb.WriteString(w.prefix())
		w.started = true
	}
	w.sb.WriteString(s)
	return w
}

// Tokens writes each non-empty token.
func (w *Writer) Tokens(tokens ...string) *Writer {
	for _, t := range tokens {
		w.Token(t)
	}
	return w
}

// Append writes s directly after the previous token, without a space.
func (w *Writer) Append(s string) *Writer {
	if !w.started {
		return w.Token(s)
	}
	w.sb.WriteString(s)
	return w
}

// EndLine terminates the current line and clears.
func (w *Writer) EndLine() *Writer {
	w.sb.WriteString(w.newline)
	w.Clear()
	return w
}

// Line writes a whole line at the current depth.
func (w *Writer) Line(s string) *Writer {
	if s == "" {
		return w.BlankLine()
	}
	w.Clear()
	return w.Token(s).EndLine()
}

func (w *Writer) BlankLine() *Writer {
	w.Clear()
	w.sb.WriteString(w.newline)
	return w
}

// Write writes a possibly multi-line value; every line of it is placed at
// the current depth.
func (w *Writer) Write(value string) *Writer {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	for _, l := range strings.Split(strings.TrimSuffix(value, "\n"), "\n") {
		w.Line(l)
	}
	return w
}

func (w *Writer) Indent() *Writer {
	w.depth++
	return w
}

func (w *Writer) Dedent() *Writer {
	if w.depth > 0 {
		w.depth--
	}
	return w
}

// Body renders a statement tree at one level below the current depth.
func (w *Writer) Body(c *code.Code) error {
	if c == nil {
		return nil
	}
	if !c.HasCode() {
		return c.Err()
	}
	w.depth++
	defer func() { w.depth-- }()
	w.Clear()
	if err := c.BuildCode(&w.sb, w.prefix()); err != nil {
		return err
	}
	w.sb.WriteString(w.newline)
	return nil
}

// Block writes "{", the body, and "}" at the current depth.
func (w *Writer) Block(c *code.Code) error {
	w.Line("{")
	if err := w.Body(c); err != nil {
		return err
	}
	w.Line("}")
	return nil
}

func (w *Writer) String() string {
	return w.sb.String()
}

// Render formats d from scratch. Renders on one Writer are serialised.
func (w *Writer) Render(d Decl) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sb.Reset()
	w.depth = 0
	w.inInterface = false
	w.className = ""
	w.Clear()
	if err := d.emit(w); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}
