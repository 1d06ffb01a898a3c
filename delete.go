// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

// Remove deletes key and returns the value it held and whether it was
// present. Removing an absent key changes nothing.
func (t *RadixTrie) Remove(key string) (string, bool, error) {
	if err := t.validate(key); err != nil {
		return "", false, err
	}

	x := t.exactSearch(key)
	if x == nil || !x.isWord {
		return "", false, nil
	}

	old := x.clearValue()
	t.deleteNode(x)

	if t.root == nil {
		t.cache.purge()
	} else {
		t.cache.evict(key)
	}

	return old, true, nil
}

// deleteNode restructures the trie after x lost its value.
func (t *RadixTrie) deleteNode(x *node) {
	t.size--

	if x.numChildren() > 0 {
		// x stays as a branch point unless it is left with a single child
		if x.numChildren() == 1 {
			t.merge(x)
		}
		return
	}

	p := x.parent
	count := p.numChildren()

	if p == t.root && count == 1 {
		t.root = nil
		t.size = 0
		p.free()
		x.free()
		t.logger.Debug().Msg("Trie emptied")
		return
	}

	p.deleteChild(x)
	x.free()

	if p.isWord {
		if count == 1 {
			p.children = nil
		}
		return
	}

	// A non word node always had at least two children here. The root
	// carries no label and keeps a single child as is.
	if count > 2 || p == t.root {
		return
	}
	t.merge(p)
}

// merge folds m, which must have exactly one child, into that child.
func (t *RadixTrie) merge(m *node) {
	c := m.onlyChild()
	pa := m.parent

	c.reset(concatLabels(m.label, c.label), pa)
	pa.setChild(c)
	m.free()

	t.logger.Debug().Bytes("label", c.label).Msg("Merged edge")
}
