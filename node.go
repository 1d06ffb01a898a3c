// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

// node is one edge of the trie plus an optional stored value. The root is
// the only node with an empty label.
type node struct {
	label []byte

	value  string
	isWord bool

	// parent is only used to walk upwards while splitting and merging.
	parent *node

	// children is keyed by the first byte of each child's label, nil when
	// the node has no children.
	children map[byte]*node
}

func newNode(label []byte, parent *node) *node {
	return &node{label: label, parent: parent}
}

func (n *node) numChildren() int {
	return len(n.children)
}

func (n *node) childAt(c byte) *node {
	return n.children[c]
}

// setChild stores child under the first byte of its label.
func (n *node) setChild(child *node) {
	if n.children == nil {
		n.children = make(map[byte]*node, 2)
	}
	n.children[child.label[0]] = child
}

func (n *node) deleteChild(child *node) {
	delete(n.children, child.label[0])
}

// onlyChild returns the single child of n. It must only be called when
// n has exactly one child.
func (n *node) onlyChild() *node {
	for _, ch := range n.children {
		return ch
	}
	return nil
}

func (n *node) reset(label []byte, parent *node) {
	n.label = label
	n.parent = parent
}

func (n *node) setValue(value string) (string, bool) {
	old, had := n.value, n.isWord
	n.value = value
	n.isWord = true
	return old, had
}

func (n *node) clearValue() string {
	old := n.value
	n.value = ""
	n.isWord = false
	return old
}

// free detaches n so nothing reachable through it outlives its removal.
func (n *node) free() {
	n.label = nil
	n.parent = nil
	n.children = nil
}
