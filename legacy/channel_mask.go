// SPDX-License-Identifier: EPL-2.0

package legacy

import "math/bits"

// ChannelMask is the legacy audio_channel_mask_t: a 30-bit channel field
// plus a 2-bit representation selector in the top bits.
//
// The channel field bits are reused between input and output masks, so a
// mask alone does not identify its channel set; the caller must know the
// direction it was produced for.
type ChannelMask uint32

// Representation selectors (bits 30..31 of a mask).
const (
	RepresentationPosition uint32 = 0
	RepresentationIndex    uint32 = 2
)

const (
	channelBits        = 30
	representationBits = 2

	// ChannelBitsMask selects the 30-bit channel field.
	ChannelBitsMask ChannelMask = (1 << channelBits) - 1
)

// Sentinels.
const (
	ChannelNone    ChannelMask = 0
	ChannelInvalid ChannelMask = 0xC0000000
)

// Output position bits.
const (
	OutFrontLeft          ChannelMask = 0x1
	OutFrontRight         ChannelMask = 0x2
	OutFrontCenter        ChannelMask = 0x4
	OutLowFrequency       ChannelMask = 0x8
	OutBackLeft           ChannelMask = 0x10
	OutBackRight          ChannelMask = 0x20
	OutFrontLeftOfCenter  ChannelMask = 0x40
	OutFrontRightOfCenter ChannelMask = 0x80
	OutBackCenter         ChannelMask = 0x100
	OutSideLeft           ChannelMask = 0x200
	OutSideRight          ChannelMask = 0x400
	OutTopCenter          ChannelMask = 0x800
	OutTopFrontLeft       ChannelMask = 0x1000
	OutTopFrontCenter     ChannelMask = 0x2000
	OutTopFrontRight      ChannelMask = 0x4000
	OutTopBackLeft        ChannelMask = 0x8000
	OutTopBackCenter      ChannelMask = 0x10000
	OutTopBackRight       ChannelMask = 0x20000
	OutTopSideLeft        ChannelMask = 0x40000
	OutTopSideRight       ChannelMask = 0x80000
	OutBottomFrontLeft    ChannelMask = 0x100000
	OutBottomFrontCenter  ChannelMask = 0x200000
	OutBottomFrontRight   ChannelMask = 0x400000
	OutLowFrequency2      ChannelMask = 0x800000
	OutFrontWideLeft      ChannelMask = 0x1000000
	OutFrontWideRight     ChannelMask = 0x2000000
	OutHapticB            ChannelMask = 0x10000000
	OutHapticA            ChannelMask = 0x20000000
)

// Canonical output masks.
const (
	OutMono           = OutFrontLeft
	OutStereo         = OutFrontLeft | OutFrontRight
	Out2Point1        = OutStereo | OutLowFrequency
	OutTri            = OutStereo | OutFrontCenter
	OutTriBack        = OutStereo | OutBackCenter
	Out3Point1        = OutTri | OutLowFrequency
	Out2Point0Point2  = OutStereo | OutTopSideLeft | OutTopSideRight
	Out2Point1Point2  = Out2Point0Point2 | OutLowFrequency
	Out3Point0Point2  = OutTri | OutTopSideLeft | OutTopSideRight
	Out3Point1Point2  = Out3Point0Point2 | OutLowFrequency
	OutQuad           = OutStereo | OutBackLeft | OutBackRight
	OutQuadSide       = OutStereo | OutSideLeft | OutSideRight
	OutSurround       = OutTri | OutBackCenter
	OutPenta          = OutQuad | OutFrontCenter
	Out5Point1        = Out3Point1 | OutBackLeft | OutBackRight
	Out5Point1Side    = Out3Point1 | OutSideLeft | OutSideRight
	Out5Point1Point2  = Out5Point1 | OutTopSideLeft | OutTopSideRight
	Out5Point1Point4  = Out5Point1 | OutTopFrontLeft | OutTopFrontRight | OutTopBackLeft | OutTopBackRight
	Out6Point1        = Out5Point1 | OutBackCenter
	Out7Point1        = Out5Point1 | OutSideLeft | OutSideRight
	Out7Point1Point2  = Out7Point1 | OutTopSideLeft | OutTopSideRight
	Out7Point1Point4  = Out7Point1 | OutTopFrontLeft | OutTopFrontRight | OutTopBackLeft | OutTopBackRight
	OutFrontBack      = OutFrontCenter | OutBackCenter
	Out13Point360RA   = OutStereo | OutFrontCenter | OutBackLeft | OutBackRight |
		OutTopFrontLeft | OutTopFrontCenter | OutTopFrontRight |
		OutTopBackLeft | OutTopBackRight |
		OutBottomFrontLeft | OutBottomFrontCenter | OutBottomFrontRight
	Out22Point2 = Out7Point1Point4 | OutFrontLeftOfCenter | OutFrontRightOfCenter |
		OutBackCenter | OutTopCenter | OutTopFrontCenter | OutTopBackCenter |
		OutTopSideLeft | OutTopSideRight |
		OutBottomFrontLeft | OutBottomFrontCenter | OutBottomFrontRight |
		OutLowFrequency2
	OutMonoHapticA    = OutMono | OutHapticA
	OutStereoHapticA  = OutStereo | OutHapticA
	OutHapticAB       = OutHapticA | OutHapticB
	OutMonoHapticAB   = OutMono | OutHapticAB
	OutStereoHapticAB = OutStereo | OutHapticAB
)

// Input position bits. These overlap numerically with the output bits above.
const (
	InLeft           ChannelMask = 0x4
	InRight          ChannelMask = 0x8
	InFront          ChannelMask = 0x10
	InBack           ChannelMask = 0x20
	InLeftProcessed  ChannelMask = 0x40
	InRightProcessed ChannelMask = 0x80
	InFrontProcessed ChannelMask = 0x100
	InBackProcessed  ChannelMask = 0x200
	InPressure       ChannelMask = 0x400
	InXAxis          ChannelMask = 0x800
	InYAxis          ChannelMask = 0x1000
	InZAxis          ChannelMask = 0x2000
	InVoiceUplink    ChannelMask = 0x4000
	InVoiceDnlink    ChannelMask = 0x8000
	InBackLeft       ChannelMask = 0x10000
	InBackRight      ChannelMask = 0x20000
	InCenter         ChannelMask = 0x40000
	InLowFrequency   ChannelMask = 0x100000
	InTopLeft        ChannelMask = 0x200000
	InTopRight       ChannelMask = 0x400000
)

// Canonical input masks.
const (
	InMono           = InFront
	InStereo         = InLeft | InRight
	InFrontBack      = InFront | InBack
	In6              = InLeft | InRight | InFront | InBack | InLeftProcessed | InRightProcessed
	In2Point0Point2  = InStereo | InTopLeft | InTopRight
	In2Point1Point2  = In2Point0Point2 | InLowFrequency
	In3Point0Point2  = InStereo | InCenter | InTopLeft | InTopRight
	In3Point1Point2  = In3Point0Point2 | InLowFrequency
	In5Point1        = InStereo | InCenter | InBackLeft | InBackRight | InLowFrequency
	InVoiceUplinkMono = InVoiceUplink | InMono
	InVoiceDnlinkMono = InVoiceDnlink | InMono
	InVoiceCallMono   = InVoiceUplink | InVoiceDnlink | InMono
)

// MakeMask composes a mask from a representation selector and a channel
// field. Bits outside the 30-bit channel field are discarded.
func MakeMask(representation uint32, channelBits ChannelMask) ChannelMask {
	return ChannelMask(representation<<30) | (channelBits & ChannelBitsMask)
}

// Representation returns the representation selector of m.
func (m ChannelMask) Representation() uint32 {
	return uint32(m) >> 30
}

// Bits returns the 30-bit channel field of m.
func (m ChannelMask) Bits() ChannelMask {
	return m & ChannelBitsMask
}

// CountChannels returns the number of channels selected by m's channel
// field. For position masks with a known direction this is the channel
// count; for index masks it is the number of used indexes.
func (m ChannelMask) CountChannels() int {
	return bits.OnesCount32(uint32(m.Bits()))
}

// IsValid reports whether m uses a defined representation and is not the
// reserved invalid sentinel.
func (m ChannelMask) IsValid() bool {
	if m == ChannelInvalid {
		return false
	}
	rep := m.Representation()
	return rep == RepresentationPosition || rep == RepresentationIndex
}
