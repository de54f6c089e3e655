// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

type gainModePair struct {
	wire   wire.GainMode
	legacy legacy.GainMode
}

var gainModePairs = []gainModePair{
	{wire.GainModeJoint, legacy.GainModeJoint},
	{wire.GainModeChannels, legacy.GainModeChannels},
	{wire.GainModeRamp, legacy.GainModeRamp},
}

// GainModeToLegacy converts a single wire gain mode to its legacy bit.
func GainModeToLegacy(m wire.GainMode) (legacy.GainMode, error) {
	for _, p := range gainModePairs {
		if p.wire == m {
			return p.legacy, nil
		}
	}
	return 0, fmt.Errorf("%w: gain mode %d", ErrUnrepresentable, int32(m))
}

// GainModeFromLegacy converts a single legacy gain mode bit to its wire
// mode.
func GainModeFromLegacy(m legacy.GainMode) (wire.GainMode, error) {
	for _, p := range gainModePairs {
		if p.legacy == m {
			return p.wire, nil
		}
	}
	return 0, fmt.Errorf("%w: gain mode %#x", ErrUnknownLegacyValue, uint32(m))
}

// GainModeMaskToLegacy converts a wire gain mode mask bit by bit. Bits
// outside the defined modes fail the conversion.
func GainModeMaskToLegacy(mask wire.GainModeMask) (legacy.GainMode, error) {
	var out legacy.GainMode
	remaining := mask
	for _, p := range gainModePairs {
		bit := wire.GainModeMask(1) << p.wire
		if remaining&bit != 0 {
			out |= p.legacy
			remaining &^= bit
		}
	}
	if remaining != 0 {
		return 0, fmt.Errorf("%w: gain mode mask %#x has undefined bits %#x",
			ErrUnrepresentable, int32(mask), int32(remaining))
	}
	return out, nil
}

// GainModeMaskFromLegacy converts a legacy gain mode bitmask bit by bit.
func GainModeMaskFromLegacy(mask legacy.GainMode) (wire.GainModeMask, error) {
	var out wire.GainModeMask
	remaining := mask
	for _, p := range gainModePairs {
		if remaining&p.legacy != 0 {
			out |= wire.GainModeMask(1) << p.wire
			remaining &^= p.legacy
		}
	}
	if remaining != 0 {
		return 0, fmt.Errorf("%w: gain mode mask %#x has undefined bits %#x",
			ErrUnknownLegacyValue, uint32(mask), uint32(remaining))
	}
	return out, nil
}

// GainToLegacy converts a wire gain record to a legacy one. isInput
// supplies the direction context for the embedded channel mask.
func GainToLegacy(g wire.Gain, isInput bool) (legacy.Gain, error) {
	mode, err := GainModeMaskToLegacy(g.Mode)
	if err != nil {
		return legacy.Gain{}, err
	}
	mask, err := ChannelLayoutToLegacy(g.ChannelMask, isInput)
	if err != nil {
		return legacy.Gain{}, err
	}
	return legacy.Gain{
		Mode:         mode,
		ChannelMask:  mask,
		MinValue:     g.MinValue,
		MaxValue:     g.MaxValue,
		DefaultValue: g.DefaultValue,
		StepValue:    g.StepValue,
		MinRampMs:    uint32(g.MinRampMs),
		MaxRampMs:    uint32(g.MaxRampMs),
	}, nil
}

// GainFromLegacy converts a legacy gain record to a wire one. isInput
// supplies the direction context for the embedded channel mask.
func GainFromLegacy(g legacy.Gain, isInput bool) (wire.Gain, error) {
	mode, err := GainModeMaskFromLegacy(g.Mode)
	if err != nil {
		return wire.Gain{}, err
	}
	mask, err := ChannelLayoutFromLegacy(g.ChannelMask, isInput)
	if err != nil {
		return wire.Gain{}, err
	}
	return wire.Gain{
		Mode:         mode,
		ChannelMask:  mask,
		MinValue:     g.MinValue,
		MaxValue:     g.MaxValue,
		DefaultValue: g.DefaultValue,
		StepValue:    g.StepValue,
		MinRampMs:    int32(g.MinRampMs),
		MaxRampMs:    int32(g.MaxRampMs),
	}, nil
}
