// SPDX-License-Identifier: EPL-2.0

// Package wire defines the stable, extensible audio metadata model used
// across process and API boundaries: channel layouts, device descriptions,
// format descriptions, gains and a handful of scalar enumerations.
//
// All types are immutable value types compared by value. ChannelLayout is
// a tagged variant; the remaining entities are plain structs. Each of the
// three description types provides a Hash method so independently
// constructed equal values can be matched cheaply across component
// boundaries.
//
// Conversion to and from the platform's legacy representation lives in the
// convert package; this package has no knowledge of legacy bit layouts.
package wire
