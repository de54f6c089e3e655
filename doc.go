// SPDX-License-Identifier: EPL-2.0

// Package audhal translates audio metadata between a wire-stable model
// and the legacy bitmask representation, and fronts container writers
// with a status-code muxer facade.
//
// # Packages
//
//   - wire: the forward-compatible metadata model (tagged channel
//     layouts, device descriptions, format descriptions)
//   - legacy: the packed enumerators and bitmasks of the old HAL surface
//   - convert: bidirectional translation between the two, direction-aware
//     where the legacy bit spaces overlap
//   - muxer: the container-writer facade with C-style status codes
//   - audio, formats/...: PCM decoding for WAV, MP3, Ogg Vorbis and AIFF
//
// # Quick Start
//
// Converting metadata:
//
//	mask, err := convert.ChannelLayoutToLegacy(
//	    wire.MakeLayoutMask(wire.Layout5Point1), false /* output */)
//
// Transmuxing a decoded stream into a WAV file:
//
//	decoder, _ := audhal.Decoders().Get("mp3")
//	src, _ := decoder.Decode(in)
//	err := audhal.TransmuxWAV(out, src, 4096)
//
// The root package also carries port-level helpers (PortGainsToLegacy,
// PortGainsFromLegacy) for whole gain stages.
package audhal
