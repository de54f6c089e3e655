// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package wraps github.com/hajimehoshi/go-mp3 to expose MP3 streams
// as audio.Source readers.
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//
// The source yields interleaved stereo float32 samples in [-1.0, 1.0]
// at the stream's native sample rate.
//
// # Metadata
//
// Description reports the wire-level format of an MP3 bitstream:
//
//	desc := mp3.Description() // "audio/mpeg"
//
// # Limitations
//
//   - Decoding only, no MP3 encoding
//   - Output is always stereo
package mp3
