// SPDX-License-Identifier: EPL-2.0

package wire

// GainMode enumerates how a gain stage applies its value.
type GainMode int32

const (
	// GainModeJoint applies one value across all channels.
	GainModeJoint GainMode = 0
	// GainModeChannels applies a separate value per channel.
	GainModeChannels GainMode = 1
	// GainModeRamp applies the value over a ramp duration.
	GainModeRamp GainMode = 2
)

// GainModeMask is a bitmask of gain modes: bit (1 << mode) set means the
// mode is enabled.
type GainModeMask int32

// Has reports whether the mask enables mode m.
func (g GainModeMask) Has(m GainMode) bool {
	return g&(1<<m) != 0
}

// ModeMaskOf composes a mask from individual modes.
func ModeMaskOf(modes ...GainMode) GainModeMask {
	var mask GainModeMask
	for _, m := range modes {
		mask |= 1 << m
	}
	return mask
}

// Gain describes the gain-control range and ramp timing of one port gain
// stage. Values are in millibels; ramps are in milliseconds. The channel
// mask is meaningful for GainModeChannels stages.
type Gain struct {
	Mode         GainModeMask  `json:"mode"`
	ChannelMask  ChannelLayout `json:"channelMask"`
	MinValue     int32         `json:"minValue"`
	MaxValue     int32         `json:"maxValue"`
	DefaultValue int32         `json:"defaultValue"`
	StepValue    int32         `json:"stepValue"`
	MinRampMs    int32         `json:"minRampMs"`
	MaxRampMs    int32         `json:"maxRampMs"`
}
