// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import (
	"github.com/rs/zerolog"
)

// RadixTrie is a compressed prefix tree mapping byte string keys to
// string values. Keys are expected to use a small single byte alphabet
// such as a-z, which bounds every node to that many children.
//
// A RadixTrie is not safe for concurrent use. Callers sharing one must
// guard the whole instance with a lock.
type RadixTrie struct {
	// root is nil while the trie is empty.
	root *node
	size int

	cache     *lookupCache
	cacheSize int

	logger zerolog.Logger
}

func New(opts ...Option) *RadixTrie {
	t := &RadixTrie{logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(t)
	}

	cache, err := newLookupCache(t.cacheSize)
	if err != nil {
		t.logger.Warn().Err(err).Int("size", t.cacheSize).Msg("Lookup cache disabled")
	}
	t.cache = cache

	return t
}

// Len is used to return the number of keys stored in the trie
func (t *RadixTrie) Len() int {
	return t.size
}

// StartsWith reports whether at least one stored key has key as prefix.
func (t *RadixTrie) StartsWith(key string) (bool, error) {
	if err := t.validate(key); err != nil {
		return false, err
	}
	return t.prefixSearch(key) != nil, nil
}

// Contains reports whether key is stored with a value.
func (t *RadixTrie) Contains(key string) (bool, error) {
	_, found, err := t.Get(key)
	return found, err
}

// Get returns the value stored for key and whether there was one.
func (t *RadixTrie) Get(key string) (string, bool, error) {
	if err := t.validate(key); err != nil {
		return "", false, err
	}

	if res, ok := t.cache.get(key); ok {
		return res.value, res.found, nil
	}

	var res lookupResult
	if n := t.exactSearch(key); n != nil && n.isWord {
		res = lookupResult{value: n.value, found: true}
	}
	t.cache.store(key, res)

	return res.value, res.found, nil
}

func (t *RadixTrie) validate(key string) error {
	if err := checkKey(key); err != nil {
		t.logger.Debug().Err(err).Msg("Rejected key")
		return err
	}
	return nil
}

// prefixSearch returns the node reached by consuming key, allowing key to
// end in the middle of an edge.
func (t *RadixTrie) prefixSearch(key string) *node {
	n := t.root
	if n == nil {
		return nil
	}

	for depth := 0; depth < len(key); {
		child := n.childAt(key[depth])
		if child == nil {
			return nil
		}
		if !overlapMatches(child.label, key[depth:]) {
			return nil
		}
		depth += len(child.label)
		n = child
	}
	return n
}

// exactSearch returns the node at which key is fully consumed on an edge
// boundary. The node may be a branch point without a value.
func (t *RadixTrie) exactSearch(key string) *node {
	n := t.root
	if n == nil {
		return nil
	}

	for depth := 0; depth < len(key); {
		child := n.childAt(key[depth])
		if child == nil {
			return nil
		}
		// "car" does not reach "company", "competent" diverges from it
		if !edgeMatches(child.label, key[depth:]) {
			return nil
		}
		depth += len(child.label)
		n = child
	}
	return n
}
