// SPDX-License-Identifier: EPL-2.0

// Package audio provides the track ingest primitives shared by the format
// decoders.
//
// This package contains the building blocks the rest of the module plugs
// into:
//   - Source interface for decoded PCM streams
//   - Decoder interface and format Registry for decoder registration
//   - Describe for the wire metadata of a decoded stream
//
// # Source Interface
//
// The Source interface is the foundation of track ingest:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders return a Source, so callers can drain any supported
// container the same way.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// # Describing a Stream
//
// Describe reports the wire metadata of a decoded source:
//
//	format, layout := audio.Describe(src)
//
// Decoded streams are float32 PCM, and a source knows only its channel
// count, so the layout is an index mask.
package audio
