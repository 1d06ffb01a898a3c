// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import "github.com/rs/zerolog"

type Option func(t *RadixTrie)

// WithLogger sets the logger structural changes are traced to. The trie
// is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *RadixTrie) {
		t.logger = logger
	}
}

// WithLookupCache keeps the results of up to size exact lookups in an LRU
// cache. A size of zero or less disables the cache.
func WithLookupCache(size int) Option {
	return func(t *RadixTrie) {
		t.cacheSize = size
	}
}
