// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

// smallKey is a non-empty key over a three letter alphabet, so random
// keys share prefixes often enough to exercise splits and merges.
type smallKey string

func (smallKey) Generate(rnd *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(smallKey(randomKeys(rnd, 1, "abc", 5)[0]))
}

type operation struct {
	Remove bool
	Key    smallKey
}

func (operation) Generate(rnd *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(operation{
		Remove: rnd.Intn(3) == 0,
		Key:    smallKey("").Generate(rnd, size).Interface().(smallKey),
	})
}

func TestRadixTrie_MatchesMapModel(t *testing.T) {
	t.Parallel()

	// Both sides replay the same operations and report every lookup result,
	// so any divergence from a plain map shows up in CheckEqual.
	radixReplay := func(ops []operation, probes []smallKey) []string {
		tr := New()
		var out []string
		for i, op := range ops {
			if op.Remove {
				v, ok, _ := tr.Remove(string(op.Key))
				out = append(out, record(v, ok))
			} else {
				v, ok, _ := tr.Put(string(op.Key), value(i))
				out = append(out, record(v, ok))
			}
			requireInvariants(t, tr)
		}
		for _, p := range probes {
			v, ok, _ := tr.Get(string(p))
			out = append(out, record(v, ok))
			prefix, _ := tr.StartsWith(string(p))
			out = append(out, record("", prefix))
		}
		return append(out, record("", tr.Len() > 0))
	}

	mapReplay := func(ops []operation, probes []smallKey) []string {
		m := map[string]string{}
		var out []string
		for i, op := range ops {
			v, ok := m[string(op.Key)]
			out = append(out, record(v, ok))
			if op.Remove {
				delete(m, string(op.Key))
			} else {
				m[string(op.Key)] = value(i)
			}
		}
		for _, p := range probes {
			v, ok := m[string(p)]
			out = append(out, record(v, ok))
			prefix := false
			for k := range m {
				if strings.HasPrefix(k, string(p)) {
					prefix = true
					break
				}
			}
			out = append(out, record("", prefix))
		}
		return append(out, record("", len(m) > 0))
	}

	if err := quick.CheckEqual(radixReplay, mapReplay, nil); err != nil {
		t.Error(err)
	}
}

func value(i int) string {
	return "v" + strings.Repeat("x", i%7)
}

func record(v string, ok bool) string {
	if !ok {
		return "-"
	}
	return "+" + v
}
