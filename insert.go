// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

// Put stores value under key, overwriting any earlier value. It returns the
// previous value and whether there was one.
func (t *RadixTrie) Put(key, value string) (string, bool, error) {
	if err := t.validate(key); err != nil {
		return "", false, err
	}
	if err := checkValue(value); err != nil {
		t.logger.Debug().Err(err).Str("key", key).Msg("Rejected value")
		return "", false, err
	}

	target := t.insertNode(key)
	old, had := target.setValue(value)
	if !had {
		t.size++
	}
	t.cache.store(key, lookupResult{value: value, found: true})

	return old, had, nil
}

// insertNode walks down the trie along key, adding and splitting edges as
// needed, and returns the node key ends at.
func (t *RadixTrie) insertNode(key string) *node {
	if t.root == nil {
		t.root = newNode(nil, nil)
	}

	n := t.root
	for depth := 0; depth < len(key); {
		rest := key[depth:]

		kid := n.childAt(rest[0])
		if kid == nil {
			leaf := newNode([]byte(rest), n)
			n.setChild(leaf)
			return leaf
		}

		cmn := commonPrefixLength(kid.label, rest)
		if cmn < len(kid.label) {
			son := t.split(n, kid, cmn)
			if cmn == len(rest) {
				// insert "slow" into "slower"
				return son
			}
			// insert "slay" into "slower"
			leaf := newNode([]byte(rest[cmn:]), son)
			son.setChild(leaf)
			return leaf
		}

		if cmn == len(rest) {
			return kid
		}
		// insert "slower" below "slow"
		depth += cmn
		n = kid
	}
	return n
}

// split cuts the edge leading to kid after its first cmn bytes. The new
// intermediate node takes kid's place below parent and is returned.
func (t *RadixTrie) split(parent, kid *node, cmn int) *node {
	son := newNode(append([]byte(nil), kid.label[:cmn]...), parent)
	parent.setChild(son)

	kid.reset(kid.label[cmn:], son)
	son.setChild(kid)

	t.logger.Debug().
		Bytes("label", son.label).
		Bytes("suffix", kid.label).
		Msg("Split edge")

	return son
}
