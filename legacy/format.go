// SPDX-License-Identifier: EPL-2.0

package legacy

// Format is the legacy audio_format_t enumerator: a main-format field in
// the high byte and a sub-format field in the low bits.
type Format uint32

const (
	FormatMainMask Format = 0xFF000000
	FormatSubMask  Format = 0x00FFFFFF
)

const (
	FormatInvalid Format = 0xFFFFFFFF
	FormatDefault Format = 0
)

// PCM sub-formats (main format 0).
const (
	FormatPCM16Bit       Format = 0x1
	FormatPCM8Bit        Format = 0x2
	FormatPCM32Bit       Format = 0x3
	FormatPCM8_24Bit     Format = 0x4
	FormatPCMFloat       Format = 0x5
	FormatPCM24BitPacked Format = 0x6
)

// Compressed and bitstream main formats.
const (
	FormatMP3      Format = 0x01000000
	FormatAMRNB    Format = 0x02000000
	FormatAMRWB    Format = 0x03000000
	FormatAAC      Format = 0x04000000
	FormatVorbis   Format = 0x06000000
	FormatOpus     Format = 0x08000000
	FormatAC3      Format = 0x09000000
	FormatEAC3     Format = 0x0A000000
	FormatEAC3JOC  Format = 0x0A000001
	FormatDTS      Format = 0x0B000000
	FormatDTSHD    Format = 0x0C000000
	FormatIEC61937 Format = 0x0D000000
	FormatFLAC     Format = 0x1B000000
	FormatMAT      Format = 0x24000000
	FormatMAT1_0   Format = 0x24000001
	FormatMAT2_0   Format = 0x24000002
	FormatMAT2_1   Format = 0x24000003
)

// MainFormat returns the main-format field of f.
func (f Format) MainFormat() Format {
	return f & FormatMainMask
}

// IsPCM reports whether f is a linear PCM format.
func (f Format) IsPCM() bool {
	return f != FormatInvalid && f.MainFormat() == 0 && f != FormatDefault
}
