package code

type nodeKind uint8

const (
	literalNode nodeKind = iota
	groupNode
	// lineNode holds the inline contents of one output line.
	lineNode
	// nestNode is a group whose lines sit depth levels deeper than its parent's.
	nestNode
)

// Node is one element of the append-only output tree: either a literal or a
// composite with ordered children. Children are only ever appended, and a
// node belongs to at most one parent.
type Node struct {
	kind     nodeKind
	text     string
	depth    int
	children []*Node
	parent   *Node
	// sealed marks a node only the owning session may extend.
	sealed bool
}

// Lit returns a literal node.
func Lit(text string) *Node {
	return &Node{kind: literalNode, text: text}
}

// Group returns an empty composite node.
func Group(children ...*Node) *Node {
	n := &Node{kind: groupNode}
	return n.add(children...)
}

func newLine(parts ...*Node) *Node {
	n := &Node{kind: lineNode}
	return n.add(parts...)
}

func newNest(depth int) *Node {
	return &Node{kind: nestNode, depth: depth}
}

func tok(t Token) *Node {
	return Lit(t.text)
}

// Append adds children in order and returns n. A node stops accepting
// children once it has been placed into a tree: appending to it, to a
// literal, or appending a node that already has a parent panics with a
// *StateError.
func (n *Node) Append(children ...*Node) *Node {
	if n.parent != nil || n.sealed {
		panic(&StateError{Op: "Append", Reason: "node is owned by a tree"})
	}
	return n.add(children...)
}

// add is Append without the ownership check on n, for the session's own
// frames.
func (n *Node) add(children ...*Node) *Node {
	if n.kind == literalNode && len(children) > 0 {
		panic(&StateError{Op: "Append", Reason: "cannot append to a literal node"})
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil || c == n {
			panic(&StateError{Op: "Append", Reason: "node already belongs to a tree"})
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// AppendText appends a literal child.
func (n *Node) AppendText(text string) *Node {
	return n.Append(Lit(text))
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// IsEmpty reports whether nothing renders from n.
func (n *Node) IsEmpty() bool {
	if n.kind == literalNode {
		return n.text == ""
	}
	if n.kind == lineNode {
		return false
	}
	for _, c := range n.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
