// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package wraps github.com/jfreymuth/oggvorbis to expose Ogg Vorbis
// streams as audio.Source readers.
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	src, err := decoder.Decode(file)
//
// The source yields interleaved float32 samples in [-1.0, 1.0] with the
// channel count and sample rate of the stream. For stereo files samples
// are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Metadata
//
// Description reports the wire-level format of a Vorbis bitstream:
//
//	desc := vorbis.Description() // "audio/vorbis"
//
// # Limitations
//
//   - Decoding only, no Vorbis encoding
package vorbis
