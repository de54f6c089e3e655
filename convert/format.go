// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

// Encoding strings used by the format table.
const (
	EncodingMP3      = "audio/mpeg"
	EncodingAMRNB    = "audio/amr"
	EncodingAMRWB    = "audio/amr-wb"
	EncodingAAC      = "audio/mp4a-latm"
	EncodingVorbis   = "audio/vorbis"
	EncodingOpus     = "audio/opus"
	EncodingAC3      = "audio/ac3"
	EncodingEAC3     = "audio/eac3"
	EncodingDTS      = "audio/vnd.dts"
	EncodingDTSHD    = "audio/vnd.dts.hd"
	EncodingIEC61937 = "audio/x-iec61937"
	EncodingFLAC     = "audio/flac"
	EncodingMAT      = "audio/vnd.dolby.mat"
)

type formatPair struct {
	wire   wire.FormatDescription
	legacy legacy.Format
}

// The format table is a closed bidirectional mapping. Compound encodings
// (base "+" modifier) are separate rows matched by the exact concatenated
// string; their structure is never parsed.
var formatPairs = []formatPair{
	{wire.FormatDescription{Type: wire.FormatTypeSysReservedInvalid}, legacy.FormatInvalid},
	{wire.FormatDescription{}, legacy.FormatDefault},

	{wire.PCMFormat(wire.PCMTypeInt16), legacy.FormatPCM16Bit},
	{wire.PCMFormat(wire.PCMTypeUInt8), legacy.FormatPCM8Bit},
	{wire.PCMFormat(wire.PCMTypeInt32), legacy.FormatPCM32Bit},
	{wire.PCMFormat(wire.PCMTypeFixedQ8_24), legacy.FormatPCM8_24Bit},
	{wire.PCMFormat(wire.PCMTypeFloat32), legacy.FormatPCMFloat},
	{wire.PCMFormat(wire.PCMTypeInt24), legacy.FormatPCM24BitPacked},

	{wire.BitstreamFormat(EncodingMP3), legacy.FormatMP3},
	{wire.BitstreamFormat(EncodingAMRNB), legacy.FormatAMRNB},
	{wire.BitstreamFormat(EncodingAMRWB), legacy.FormatAMRWB},
	{wire.BitstreamFormat(EncodingAAC), legacy.FormatAAC},
	{wire.BitstreamFormat(EncodingVorbis), legacy.FormatVorbis},
	{wire.BitstreamFormat(EncodingOpus), legacy.FormatOpus},
	{wire.BitstreamFormat(EncodingAC3), legacy.FormatAC3},
	{wire.BitstreamFormat(EncodingEAC3), legacy.FormatEAC3},
	{wire.BitstreamFormat(EncodingEAC3 + "+joc"), legacy.FormatEAC3JOC},
	{wire.BitstreamFormat(EncodingDTS), legacy.FormatDTS},
	{wire.BitstreamFormat(EncodingDTSHD), legacy.FormatDTSHD},
	{wire.BitstreamFormat(EncodingFLAC), legacy.FormatFLAC},
	{wire.BitstreamFormat(EncodingMAT), legacy.FormatMAT},
	{wire.BitstreamFormat(EncodingMAT + "+1.0"), legacy.FormatMAT1_0},
	{wire.BitstreamFormat(EncodingMAT + "+2.0"), legacy.FormatMAT2_0},
	{wire.BitstreamFormat(EncodingMAT + "+2.1"), legacy.FormatMAT2_1},

	// IEC61937 is a bitstream framed over a PCM16 transport.
	{wire.EncapsulatedFormat(wire.PCMTypeInt16, EncodingIEC61937), legacy.FormatIEC61937},
}

var (
	formatToLegacy   map[wire.FormatDescription]legacy.Format
	formatFromLegacy map[legacy.Format]wire.FormatDescription
)

func init() {
	formatToLegacy = make(map[wire.FormatDescription]legacy.Format, len(formatPairs))
	formatFromLegacy = make(map[legacy.Format]wire.FormatDescription, len(formatPairs))
	for _, p := range formatPairs {
		formatToLegacy[p.wire] = p.legacy
		formatFromLegacy[p.legacy] = p.wire
	}
}

// FormatDescriptionToLegacy converts a wire format description to a legacy
// format enumerator.
func FormatDescriptionToLegacy(f wire.FormatDescription) (legacy.Format, error) {
	if l, ok := formatToLegacy[f]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnrepresentable, f)
}

// FormatDescriptionFromLegacy converts a legacy format enumerator to a
// wire format description.
func FormatDescriptionFromLegacy(f legacy.Format) (wire.FormatDescription, error) {
	if w, ok := formatFromLegacy[f]; ok {
		return w, nil
	}
	return wire.FormatDescription{}, fmt.Errorf("%w: format %#x", ErrUnknownLegacyValue, uint32(f))
}
