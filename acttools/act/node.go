package act

import "strings"

// Node is an element of an ACT document
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Is returns true if the element is named name, ignoring case
func (n *Node) Is(name string) bool {
	return strings.EqualFold(n.Name, name)
}

// Elements returns the child elements named name, ignoring case
func (n *Node) Elements(name string) []*Node {
	var nodes []*Node
	for _, c := range n.Children {
		if c.Is(name) {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// Element returns the first child element named name, or nil
func (n *Node) Element(name string) *Node {
	for _, c := range n.Children {
		if c.Is(name) {
			return c
		}
	}
	return nil
}

// Value returns the trimmed text of the element
func (n *Node) Value() string {
	return strings.TrimSpace(n.Text)
}
