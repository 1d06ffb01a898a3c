// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Dump writes the edges of the trie to w, one per line, indented by depth.
// Edges ending in a stored key are marked with a trailing " *". Siblings
// are written in ascending byte order.
func (t *RadixTrie) Dump(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	return dumpChildren(w, t.root, 0)
}

func (t *RadixTrie) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}

func dumpChildren(w io.Writer, n *node, depth int) error {
	keys := maps.Keys(n.children)
	slices.Sort(keys)

	for _, k := range keys {
		child := n.children[k]

		mark := ""
		if child.isWord {
			mark = " *"
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), child.label, mark); err != nil {
			return err
		}
		if err := dumpChildren(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
