// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding plus the reference muxer engine.
//
// # Decoding
//
// The Decoder reads PCM 16-bit WAV streams into an audio.Source:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// Probe reports a stream's track metadata without decoding samples:
//
//	format, err := wav.Probe(file)
//
// # Muxing
//
// The Engine implements muxer.Engine over go-audio/wav and registers
// itself for muxer.OutputFormatWAVE, so creating a WAV muxer needs only
// a blank import of this package:
//
//	m, _ := muxer.New(muxer.OutputFormatWAVE, out)
//	track, _ := m.AddTrack(trackFormat)
//	_ = m.Start()
//	_ = m.WriteSampleData(track, pcmBytes, info)
//	_ = m.Stop()
//
// The engine accepts a single PCM 16-bit track with a fixed channel
// count. Append mode reopens an existing WAV and continues its data
// chunk:
//
//	m, _ := muxer.Append(muxer.OutputFormatWAVE, file, muxer.AppendToExistingData)
//
// WAV carries no geotag or orientation, so SetLocation and
// SetOrientationHint report an unsupported operation.
//
// # Limitations
//
//   - PCM 16-bit only (both decode and mux)
//   - A single track per file
package wav
