// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

// maskPair ties a wire bitmask to its legacy counterpart for one
// direction.
type maskPair struct {
	wire   int32
	legacy legacy.ChannelMask
}

// Canonical input layouts. The legacy input space has no per-channel bit
// for several of these (mono is a dedicated "front" bit, not "left"), so
// the whole mask must be matched at once.
var inLayoutPairs = []maskPair{
	{wire.LayoutMono, legacy.InMono},
	{wire.LayoutStereo, legacy.InStereo},
	{wire.LayoutFrontBack, legacy.InFrontBack},
	{wire.Layout2Point0Point2, legacy.In2Point0Point2},
	{wire.Layout2Point1Point2, legacy.In2Point1Point2},
	{wire.Layout3Point0Point2, legacy.In3Point0Point2},
	{wire.Layout3Point1Point2, legacy.In3Point1Point2},
	{wire.Layout5Point1, legacy.In5Point1},
}

// Canonical output layouts.
var outLayoutPairs = []maskPair{
	{wire.LayoutMono, legacy.OutMono},
	{wire.LayoutStereo, legacy.OutStereo},
	{wire.Layout2Point1, legacy.Out2Point1},
	{wire.LayoutTri, legacy.OutTri},
	{wire.LayoutTriBack, legacy.OutTriBack},
	{wire.Layout3Point1, legacy.Out3Point1},
	{wire.Layout2Point0Point2, legacy.Out2Point0Point2},
	{wire.Layout2Point1Point2, legacy.Out2Point1Point2},
	{wire.Layout3Point0Point2, legacy.Out3Point0Point2},
	{wire.Layout3Point1Point2, legacy.Out3Point1Point2},
	{wire.LayoutQuad, legacy.OutQuad},
	{wire.LayoutQuadSide, legacy.OutQuadSide},
	{wire.LayoutSurround, legacy.OutSurround},
	{wire.LayoutPenta, legacy.OutPenta},
	{wire.Layout5Point1, legacy.Out5Point1},
	{wire.Layout5Point1Side, legacy.Out5Point1Side},
	{wire.Layout5Point1Point2, legacy.Out5Point1Point2},
	{wire.Layout5Point1Point4, legacy.Out5Point1Point4},
	{wire.Layout6Point1, legacy.Out6Point1},
	{wire.Layout7Point1, legacy.Out7Point1},
	{wire.Layout7Point1Point2, legacy.Out7Point1Point2},
	{wire.Layout7Point1Point4, legacy.Out7Point1Point4},
	{wire.LayoutFrontBack, legacy.OutFrontBack},
	{wire.Layout13Point360RA, legacy.Out13Point360RA},
	{wire.Layout22Point2, legacy.Out22Point2},
	{wire.LayoutMonoHapticA, legacy.OutMonoHapticA},
	{wire.LayoutStereoHapticA, legacy.OutStereoHapticA},
	{wire.LayoutHapticAB, legacy.OutHapticAB},
	{wire.LayoutMonoHapticAB, legacy.OutMonoHapticAB},
	{wire.LayoutStereoHapticAB, legacy.OutStereoHapticAB},
}

// Voice masks exist only in the legacy input space.
var voicePairs = []maskPair{
	{wire.VoiceUplinkMono, legacy.InVoiceUplinkMono},
	{wire.VoiceDnlinkMono, legacy.InVoiceDnlinkMono},
	{wire.VoiceCallMono, legacy.InVoiceCallMono},
}

// Per-bit translation for masks that are no canonical layout. A wire bit
// absent from the direction's table has no legacy encoding, and a legacy
// bit absent from it has no wire meaning. Note the input table covers only
// a subset of the wire position bits.
var inBitPairs = []maskPair{
	{wire.ChannelFrontLeft, legacy.InLeft},
	{wire.ChannelFrontRight, legacy.InRight},
	{wire.ChannelFrontCenter, legacy.InCenter},
	{wire.ChannelLowFrequency, legacy.InLowFrequency},
	{wire.ChannelBackLeft, legacy.InBackLeft},
	{wire.ChannelBackRight, legacy.InBackRight},
	{wire.ChannelBackCenter, legacy.InBack},
	{wire.ChannelTopSideLeft, legacy.InTopLeft},
	{wire.ChannelTopSideRight, legacy.InTopRight},
}

var outBitPairs = []maskPair{
	{wire.ChannelFrontLeft, legacy.OutFrontLeft},
	{wire.ChannelFrontRight, legacy.OutFrontRight},
	{wire.ChannelFrontCenter, legacy.OutFrontCenter},
	{wire.ChannelLowFrequency, legacy.OutLowFrequency},
	{wire.ChannelBackLeft, legacy.OutBackLeft},
	{wire.ChannelBackRight, legacy.OutBackRight},
	{wire.ChannelFrontLeftOfCenter, legacy.OutFrontLeftOfCenter},
	{wire.ChannelFrontRightOfCenter, legacy.OutFrontRightOfCenter},
	{wire.ChannelBackCenter, legacy.OutBackCenter},
	{wire.ChannelSideLeft, legacy.OutSideLeft},
	{wire.ChannelSideRight, legacy.OutSideRight},
	{wire.ChannelTopCenter, legacy.OutTopCenter},
	{wire.ChannelTopFrontLeft, legacy.OutTopFrontLeft},
	{wire.ChannelTopFrontCenter, legacy.OutTopFrontCenter},
	{wire.ChannelTopFrontRight, legacy.OutTopFrontRight},
	{wire.ChannelTopBackLeft, legacy.OutTopBackLeft},
	{wire.ChannelTopBackCenter, legacy.OutTopBackCenter},
	{wire.ChannelTopBackRight, legacy.OutTopBackRight},
	{wire.ChannelTopSideLeft, legacy.OutTopSideLeft},
	{wire.ChannelTopSideRight, legacy.OutTopSideRight},
	{wire.ChannelBottomFrontLeft, legacy.OutBottomFrontLeft},
	{wire.ChannelBottomFrontCenter, legacy.OutBottomFrontCenter},
	{wire.ChannelBottomFrontRight, legacy.OutBottomFrontRight},
	{wire.ChannelLowFrequency2, legacy.OutLowFrequency2},
	{wire.ChannelFrontWideLeft, legacy.OutFrontWideLeft},
	{wire.ChannelFrontWideRight, legacy.OutFrontWideRight},
	{wire.ChannelHapticB, legacy.OutHapticB},
	{wire.ChannelHapticA, legacy.OutHapticA},
}

func layoutPairs(isInput bool) []maskPair {
	if isInput {
		return inLayoutPairs
	}
	return outLayoutPairs
}

func bitPairs(isInput bool) []maskPair {
	if isInput {
		return inBitPairs
	}
	return outBitPairs
}

// ChannelLayoutToLegacy converts a wire channel layout to a legacy channel
// mask. The legacy mask bit space depends on the direction, so isInput
// must say which space the caller needs.
func ChannelLayoutToLegacy(l wire.ChannelLayout, isInput bool) (legacy.ChannelMask, error) {
	switch l.Tag() {
	case wire.LayoutTagNone:
		return legacy.ChannelNone, nil

	case wire.LayoutTagInvalid:
		return legacy.ChannelInvalid, nil

	case wire.LayoutTagIndexMask:
		bits := l.Value()
		if bits == 0 || uint32(bits)&^uint32(legacy.ChannelBitsMask) != 0 {
			return 0, fmt.Errorf("%w: index mask %#x", ErrUnrepresentable, uint32(bits))
		}
		return legacy.MakeMask(legacy.RepresentationIndex, legacy.ChannelMask(bits)), nil

	case wire.LayoutTagVoiceMask:
		if !isInput {
			return 0, fmt.Errorf("%w: voice mask %#x is input-only", ErrUnrepresentable, uint32(l.Value()))
		}
		for _, p := range voicePairs {
			if p.wire == l.Value() {
				return p.legacy, nil
			}
		}
		return 0, fmt.Errorf("%w: voice mask %#x", ErrUnrepresentable, uint32(l.Value()))

	case wire.LayoutTagLayoutMask:
		mask := l.Value()
		if mask == 0 {
			return 0, fmt.Errorf("%w: empty layout mask", ErrUnrepresentable)
		}
		for _, p := range layoutPairs(isInput) {
			if p.wire == mask {
				return p.legacy, nil
			}
		}
		// Not a canonical layout: translate bit by bit.
		var out legacy.ChannelMask
		remaining := mask
		for _, p := range bitPairs(isInput) {
			if remaining&p.wire != 0 {
				out |= p.legacy
				remaining &^= p.wire
			}
		}
		if remaining != 0 {
			return 0, fmt.Errorf("%w: layout mask %#x has untranslatable bits %#x (input=%v)",
				ErrUnrepresentable, uint32(mask), uint32(remaining), isInput)
		}
		return out, nil

	default:
		return 0, fmt.Errorf("%w: tag %v", ErrUnrepresentable, l.Tag())
	}
}

// ChannelLayoutFromLegacy converts a legacy channel mask to a wire channel
// layout. isInput selects the bit space the mask was produced for; without
// it the mask is ambiguous. For instance, the output position mask
// FRONT_CENTER|LOW_FREQUENCY|TOP_FRONT_RIGHT and the invalid input mask
// IN_STEREO|IN_VOICE_UPLINK share one numeric value; only the direction
// tells them apart. That ambiguity is part of the legacy format and is
// deliberately kept.
func ChannelLayoutFromLegacy(m legacy.ChannelMask, isInput bool) (wire.ChannelLayout, error) {
	if m == legacy.ChannelNone {
		return wire.ChannelLayout{}, nil
	}
	if m == legacy.ChannelInvalid {
		return wire.MakeInvalidLayout(), nil
	}

	switch m.Representation() {
	case legacy.RepresentationIndex:
		bits := m.Bits()
		if bits == 0 {
			return wire.ChannelLayout{}, fmt.Errorf("%w: empty index mask", ErrUnknownLegacyValue)
		}
		return wire.MakeIndexMask(int32(bits)), nil

	case legacy.RepresentationPosition:
		if isInput {
			for _, p := range voicePairs {
				if p.legacy == m {
					return wire.MakeVoiceMask(p.wire), nil
				}
			}
		}
		for _, p := range layoutPairs(isInput) {
			if p.legacy == m {
				return wire.MakeLayoutMask(p.wire), nil
			}
		}
		var out int32
		remaining := m
		for _, p := range bitPairs(isInput) {
			if remaining&p.legacy != 0 {
				out |= p.wire
				remaining &^= p.legacy
			}
		}
		if remaining != 0 {
			return wire.ChannelLayout{}, fmt.Errorf("%w: channel mask %#x has undefined bits %#x (input=%v)",
				ErrUnknownLegacyValue, uint32(m), uint32(remaining), isInput)
		}
		return wire.MakeLayoutMask(out), nil

	default:
		return wire.ChannelLayout{}, fmt.Errorf("%w: channel mask %#x", ErrUnknownLegacyValue, uint32(m))
	}
}
