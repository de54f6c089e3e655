// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package wraps github.com/go-audio/aiff to expose AIFF streams as
// audio.Source readers.
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	src, err := decoder.Decode(file)
//
// The source yields interleaved float32 samples in [-1.0, 1.0] with the
// channel count and sample rate of the file.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: unsupported AIFF file structure
//
// # Metadata
//
// Description reports the wire-level format of an AIFF file:
//
//	desc := aiff.Description() // 16-bit PCM
//
// # Limitations
//
//   - Decoding only, no AIFF encoding
//   - Only 16-bit PCM (AIFF-C compression is not supported)
package aiff
