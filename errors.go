// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radixtrie

import "errors"

// ErrInvalidArgument is returned when a key or value is empty or only
// whitespace. Nothing is changed when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
