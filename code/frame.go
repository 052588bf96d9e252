package code

type frameKind uint8

const (
	frameRoot frameKind = iota
	frameCondition
	frameIf
	frameElse
	frameSwitch
	frameCase
	frameDefault
	frameTry
	frameCatch
	frameFinally
	frameLoop
	frameDo
)

var frameNames = [...]string{
	frameRoot:      "code",
	frameCondition: "condition",
	frameIf:        "if body",
	frameElse:      "else body",
	frameSwitch:    "switch",
	frameCase:      "case body",
	frameDefault:   "default body",
	frameTry:       "try body",
	frameCatch:     "catch body",
	frameFinally:   "finally body",
	frameLoop:      "loop body",
	frameDo:        "do body",
}

func (k frameKind) String() string {
	if int(k) < len(frameNames) {
		return frameNames[k]
	}
	return "unknown"
}

// frame is one open construct region. Frames form a stack in the session;
// only the top frame may append.
type frame struct {
	kind frameKind
	// construct is the group holding the construct's header and closing lines.
	construct *Node
	// body receives the region's lines; nil for condition and switch frames.
	body *Node
	// header is the condition line still being extended by And/Or.
	header *Node
	// parent is the cursor the construct was opened from.
	parent *Block
	// sw links case and default bodies to their switch.
	sw      *frame
	retired bool

	// switch state
	hasDefault bool
	needsGap   bool

	// try state
	hasFinally bool
}

type session struct {
	opts     options
	root     *Node
	stack    []*frame
	err      error
	consumed bool
}

func (s *session) top() *frame {
	return s.stack[len(s.stack)-1]
}

func (s *session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// enter reports whether op may run against f, recording a *StateError
// when it may not.
func (s *session) enter(f *frame, op string) bool {
	if s.err != nil {
		return false
	}
	switch {
	case s.consumed:
		s.fail(&StateError{Op: op, Reason: "code was embedded into another tree"})
	case f.retired:
		s.fail(&StateError{Op: op, State: f.kind.String(), Reason: "cursor is already closed"})
	case s.top() != f:
		s.fail(&StateError{Op: op, State: f.kind.String(), Reason: "an inner " + s.top().kind.String() + " is still open"})
	default:
		return true
	}
	return false
}

func (s *session) push(f *frame) {
	s.stack = append(s.stack, f)
}

func (s *session) pop() *frame {
	f := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	f.retired = true
	return f
}

// replace retires the top frame and opens next in its place.
func (s *session) replace(next *frame) {
	s.pop()
	s.push(next)
}

func (s *session) argument(op, name, value string) bool {
	if err := requireArg(op, name, value); err != nil {
		s.fail(err)
		return false
	}
	return true
}

// inline is argument for optional values: empty is fine, a line break is not.
func (s *session) inline(op, name, value string) bool {
	if err := requireInline(op, name, value); err != nil {
		s.fail(err)
		return false
	}
	return true
}

func (s *session) illegal(op string, f *frame, reason string) {
	s.fail(&StateError{Op: op, State: f.kind.String(), Reason: reason})
}
