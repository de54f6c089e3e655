// SPDX-License-Identifier: EPL-2.0

package legacy

// GainMode is the legacy audio_gain_mode_t bitmask.
type GainMode uint32

const (
	GainModeJoint    GainMode = 0x1
	GainModeChannels GainMode = 0x2
	GainModeRamp     GainMode = 0x4
)

// Gain mirrors the legacy audio_gain record: the gain-control range and
// ramp timing of one port gain stage. Values are in millibels; ramps are
// in milliseconds.
type Gain struct {
	Mode         GainMode
	ChannelMask  ChannelMask
	MinValue     int32
	MaxValue     int32
	DefaultValue int32
	StepValue    int32
	MinRampMs    uint32
	MaxRampMs    uint32
}

// MaxGains is the fixed size of the gain array in a port descriptor.
const MaxGains = 16

// Port is the fixed-layout port descriptor the rest of the stack hands
// around: NumGains says how many leading entries of Gains are meaningful.
type Port struct {
	NumGains uint32
	Gains    [MaxGains]Gain
}

// PortSessionExt is the session-scoped port extension record.
type PortSessionExt struct {
	Session int32
}

// PortHandle identifies an audio port.
type PortHandle int32

// IOHandle identifies an audio I/O stream.
type IOHandle int32

// TrackSecondaryOutputPair is the legacy shape of a track's secondary
// output routing: the track's port plus the outputs it is mirrored to.
type TrackSecondaryOutputPair struct {
	Port             PortHandle
	SecondaryOutputs []IOHandle
}
