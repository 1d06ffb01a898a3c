// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import lru "github.com/hashicorp/golang-lru/v2"

type lookupResult struct {
	value string
	found bool
}

// lookupCache remembers exact lookup results, misses included. A nil
// *lookupCache is a valid, always empty cache.
type lookupCache struct {
	entries *lru.Cache[string, lookupResult]
}

func newLookupCache(size int) (*lookupCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[string, lookupResult](size)
	if err != nil {
		return nil, err
	}
	return &lookupCache{entries: entries}, nil
}

func (c *lookupCache) get(key string) (lookupResult, bool) {
	if c == nil {
		return lookupResult{}, false
	}
	return c.entries.Get(key)
}

func (c *lookupCache) store(key string, res lookupResult) {
	if c == nil {
		return
	}
	c.entries.Add(key, res)
}

func (c *lookupCache) evict(key string) {
	if c == nil {
		return
	}
	c.entries.Remove(key)
}

func (c *lookupCache) purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}

func (c *lookupCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
