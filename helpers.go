// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import (
	"fmt"
	"strings"
)

// commonPrefixLength returns the number of leading bytes label and key share.
func commonPrefixLength(label []byte, key string) int {
	maxCmp := min(len(label), len(key))
	var idx int
	for idx = 0; idx < maxCmp; idx++ {
		if label[idx] != key[idx] {
			return idx
		}
	}
	return idx
}

// overlapMatches reports whether label and key agree on every byte they
// both have.
func overlapMatches(label []byte, key string) bool {
	return commonPrefixLength(label, key) == min(len(label), len(key))
}

// edgeMatches reports whether key starts with the whole label.
func edgeMatches(label []byte, key string) bool {
	return len(key) >= len(label) && commonPrefixLength(label, key) == len(label)
}

func concatLabels(a, b []byte) []byte {
	c := make([]byte, 0, len(a)+len(b))
	c = append(c, a...)
	return append(c, b...)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkKey(key string) error {
	if isBlank(key) {
		return fmt.Errorf("%w: key must not be blank", ErrInvalidArgument)
	}
	return nil
}

func checkValue(value string) error {
	if isBlank(value) {
		return fmt.Errorf("%w: value must not be blank", ErrInvalidArgument)
	}
	return nil
}
