// SPDX-License-Identifier: EPL-2.0

// Package convert translates audio metadata between the wire model
// (package wire) and the legacy platform representation (package legacy).
//
// For each entity there is a pair of pure functions, one per direction.
// Conversions either succeed completely or fail with ErrUnrepresentable
// (wire value with no legacy encoding) or ErrUnknownLegacyValue (legacy
// bit pattern with no wire meaning); a failed conversion never returns a
// partial result.
//
// Several legacy spaces reuse bit patterns between input and output
// contexts: the same numeric channel mask can name an output position set
// or an input voice set. Functions over those spaces take an explicit
// isInput flag, because the value alone cannot tell. Supplying the wrong
// direction yields a wrong-but-defined or failed conversion; this is a
// property of the legacy format, not of this package.
//
// All functions are stateless and safe for concurrent use; lookup tables
// are built once at package init and never mutated.
package convert
