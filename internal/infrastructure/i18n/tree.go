package i18n

import "strings"

type nodeKind uint8

const (
	opaqueNode nodeKind = iota
	leafNode
	branchNode
)

// Node is one node of a locale text tree: a leaf string, a branch of
// named children, or an opaque value that is neither (a number or an
// array in the source document).
type Node struct {
	kind     nodeKind
	text     string
	children map[string]*Node
}

// Leaf returns a string node.
func Leaf(text string) *Node {
	return &Node{kind: leafNode, text: text}
}

// Branch returns a node holding named children.
func Branch(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{kind: branchNode, children: children}
}

// NewTree converts a decoded TOML/JSON document into a tree.
func NewTree(doc map[string]any) *Node {
	children := make(map[string]*Node, len(doc))
	for k, v := range doc {
		children[k] = newNode(v)
	}
	return Branch(children)
}

func newNode(v any) *Node {
	switch val := v.(type) {
	case string:
		return Leaf(val)
	case map[string]any:
		return NewTree(val)
	default:
		return &Node{kind: opaqueNode}
	}
}

// Text returns the leaf string and whether n is a leaf.
func (n *Node) Text() (string, bool) {
	if n == nil || n.kind != leafNode {
		return "", false
	}
	return n.text, true
}

// Lookup walks the tree one segment of the dotted key at a time. It fails
// as soon as the current node is not a branch or lacks the segment.
func (n *Node) Lookup(key string) (*Node, bool) {
	cur := n
	for _, seg := range strings.Split(key, ".") {
		if cur == nil || cur.kind != branchNode {
			return nil, false
		}
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Keys returns the dotted keys of every leaf below n.
func (n *Node) Keys() []string {
	var out []string
	n.collect("", &out)
	return out
}

func (n *Node) collect(prefix string, out *[]string) {
	switch n.kind {
	case leafNode:
		*out = append(*out, prefix)
	case branchNode:
		for k, child := range n.children {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			child.collect(key, out)
		}
	}
}
