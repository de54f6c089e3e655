// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audhal/wire"

// Describe returns the wire metadata of a decoded source. Decoded streams
// are interleaved float32 PCM, and a source only knows its channel count,
// not speaker positions, so the layout is reported as an index mask.
func Describe(src Source) (wire.FormatDescription, wire.ChannelLayout) {
	format := wire.PCMFormat(wire.PCMTypeFloat32)
	layout := wire.MakeIndexMask(wire.IndexMaskFor(src.Channels()))
	return format, layout
}
