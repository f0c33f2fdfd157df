package syntax

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of a tree node.
type NodeKind uint16

// Node kinds. The three tag kinds form a closed set: every tag node is
// exactly one of opening, self-closing, or closing, decided at parse time.
const (
	NodeDocument NodeKind = iota

	NodeOpeningTag
	NodeSelfClosingTag
	NodeClosingTag

	NodeText
)

// Node represents a single node in the markup tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into File.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	// For tag nodes the span covers only the tag delimiters themselves;
	// element content hangs below an opening tag as children.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing File.
	File *File
}

// IsTag returns true if this node is one of the three tag variants.
func (n *Node) IsTag() bool {
	switch n.Kind {
	case NodeOpeningTag, NodeSelfClosingTag, NodeClosingTag:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AppendChild links child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Next = nil
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		child.Prev = nil
		return
	}
	child.Prev = n.LastChild
	n.LastChild.Next = child
	n.LastChild = child
}
