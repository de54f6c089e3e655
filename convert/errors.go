// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrUnrepresentable means a valid wire value has no legacy encoding.
	ErrUnrepresentable = errors.New("value has no legacy representation")
	// ErrUnknownLegacyValue means a legacy bit pattern or enumerator has
	// no defined wire mapping.
	ErrUnknownLegacyValue = errors.New("unknown legacy value")
)
