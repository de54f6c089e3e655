// SPDX-License-Identifier: EPL-2.0

// Package legacy defines the fixed platform-internal audio representation:
// channel masks, device enumerators, format enumerators, gain records and
// their related scalar spaces.
//
// Every value in this package mirrors an existing native ABI. The numeric
// values are load-bearing and must never be renumbered; they exist so that
// the convert package can translate between this space and the wire model
// bit-exactly.
//
// The channel mask space is not self-describing: the same numeric mask can
// mean different channel sets depending on whether it describes an input or
// an output. Functions that interpret masks therefore always take the
// direction from the caller.
package legacy
