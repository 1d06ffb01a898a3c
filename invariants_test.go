// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants walks the whole trie and fails the test if its shape
// is not a valid compressed trie or the size does not match.
func requireInvariants(t testing.TB, tr *RadixTrie) {
	t.Helper()

	if tr.root == nil {
		require.Equal(t, 0, tr.Len(), "empty trie must have size 0")
		return
	}

	root := tr.root
	require.Empty(t, root.label, "root must not have a label")
	require.False(t, root.isWord, "root must not hold a value")
	require.Nil(t, root.parent)
	require.NotZero(t, root.numChildren(), "a trie without keys must drop its root")

	wordNodes := 0
	var walk func(n *node)
	walk = func(n *node) {
		for c, child := range n.children {
			require.NotEmpty(t, child.label)
			require.Equal(t, c, child.label[0], "child %q stored under %q", child.label, c)
			require.Same(t, n, child.parent, "bad parent of %q", child.label)

			if child.isWord {
				wordNodes++
			} else {
				require.GreaterOrEqual(t, child.numChildren(), 2,
					"non word node %q must branch", child.label)
			}

			walk(child)
		}
	}
	walk(root)

	require.Equal(t, wordNodes, tr.Len())
}
