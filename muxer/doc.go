// SPDX-License-Identifier: EPL-2.0

// Package muxer exposes a stable facade over pluggable media container
// writers. The facade owns no container logic: it resolves an Engine from
// a registry keyed by output format, validates call arguments, forwards
// each operation, and translates engine failures into a fixed status-code
// taxonomy so callers never see engine-specific errors.
//
// Typical use:
//
//	m, err := muxer.New(muxer.OutputFormatWAVE, w)
//	track, err := m.AddTrack(format)
//	err = m.Start()
//	err = m.WriteSampleData(track, data, info)
//	err = m.Stop()
//
// Every error returned by a Muxer is a *Error carrying a Status; StatusOf
// recovers the status for callers that only speak result codes.
//
// A Muxer instance serves a single caller; it performs no internal
// locking.
package muxer
