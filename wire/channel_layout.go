// SPDX-License-Identifier: EPL-2.0

package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/bits"
)

// LayoutTag discriminates the ChannelLayout variant.
type LayoutTag int

const (
	// LayoutTagNone means the layout is unspecified. Zero value.
	LayoutTagNone LayoutTag = iota
	// LayoutTagInvalid marks a layout known to be unusable. It exists so
	// that "not set" and "set to something broken" stay distinguishable.
	LayoutTagInvalid
	// LayoutTagLayoutMask carries a bitmask of channel position bits.
	LayoutTagLayoutMask
	// LayoutTagIndexMask carries a bitmask of channel indexes: bit i set
	// means channel index i is present.
	LayoutTagIndexMask
	// LayoutTagVoiceMask carries a bitmask of voice channel bits.
	LayoutTagVoiceMask
)

var layoutTagNames = map[LayoutTag]string{
	LayoutTagNone:       "none",
	LayoutTagInvalid:    "invalid",
	LayoutTagLayoutMask: "layoutMask",
	LayoutTagIndexMask:  "indexMask",
	LayoutTagVoiceMask:  "voiceMask",
}

func (t LayoutTag) String() string {
	if s, ok := layoutTagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("LayoutTag(%d)", int(t))
}

// Channel position bits for LayoutTagLayoutMask values.
const (
	ChannelFrontLeft          int32 = 1 << 0
	ChannelFrontRight         int32 = 1 << 1
	ChannelFrontCenter        int32 = 1 << 2
	ChannelLowFrequency       int32 = 1 << 3
	ChannelBackLeft           int32 = 1 << 4
	ChannelBackRight          int32 = 1 << 5
	ChannelFrontLeftOfCenter  int32 = 1 << 6
	ChannelFrontRightOfCenter int32 = 1 << 7
	ChannelBackCenter         int32 = 1 << 8
	ChannelSideLeft           int32 = 1 << 9
	ChannelSideRight          int32 = 1 << 10
	ChannelTopCenter          int32 = 1 << 11
	ChannelTopFrontLeft       int32 = 1 << 12
	ChannelTopFrontCenter     int32 = 1 << 13
	ChannelTopFrontRight      int32 = 1 << 14
	ChannelTopBackLeft        int32 = 1 << 15
	ChannelTopBackCenter      int32 = 1 << 16
	ChannelTopBackRight       int32 = 1 << 17
	ChannelTopSideLeft        int32 = 1 << 18
	ChannelTopSideRight       int32 = 1 << 19
	ChannelBottomFrontLeft    int32 = 1 << 20
	ChannelBottomFrontCenter  int32 = 1 << 21
	ChannelBottomFrontRight   int32 = 1 << 22
	ChannelLowFrequency2      int32 = 1 << 23
	ChannelFrontWideLeft      int32 = 1 << 24
	ChannelFrontWideRight     int32 = 1 << 25
	ChannelHapticB            int32 = 1 << 29
	ChannelHapticA            int32 = 1 << 30
)

// Canonical layout masks.
const (
	LayoutMono          = ChannelFrontLeft
	LayoutStereo        = ChannelFrontLeft | ChannelFrontRight
	Layout2Point1       = LayoutStereo | ChannelLowFrequency
	LayoutTri           = LayoutStereo | ChannelFrontCenter
	LayoutTriBack       = LayoutStereo | ChannelBackCenter
	Layout3Point1       = LayoutTri | ChannelLowFrequency
	Layout2Point0Point2 = LayoutStereo | ChannelTopSideLeft | ChannelTopSideRight
	Layout2Point1Point2 = Layout2Point0Point2 | ChannelLowFrequency
	Layout3Point0Point2 = LayoutTri | ChannelTopSideLeft | ChannelTopSideRight
	Layout3Point1Point2 = Layout3Point0Point2 | ChannelLowFrequency
	LayoutQuad          = LayoutStereo | ChannelBackLeft | ChannelBackRight
	LayoutQuadSide      = LayoutStereo | ChannelSideLeft | ChannelSideRight
	LayoutSurround      = LayoutTri | ChannelBackCenter
	LayoutPenta         = LayoutQuad | ChannelFrontCenter
	Layout5Point1       = Layout3Point1 | ChannelBackLeft | ChannelBackRight
	Layout5Point1Side   = Layout3Point1 | ChannelSideLeft | ChannelSideRight
	Layout5Point1Point2 = Layout5Point1 | ChannelTopSideLeft | ChannelTopSideRight
	Layout5Point1Point4 = Layout5Point1 | ChannelTopFrontLeft | ChannelTopFrontRight |
		ChannelTopBackLeft | ChannelTopBackRight
	Layout6Point1       = Layout5Point1 | ChannelBackCenter
	Layout7Point1       = Layout5Point1 | ChannelSideLeft | ChannelSideRight
	Layout7Point1Point2 = Layout7Point1 | ChannelTopSideLeft | ChannelTopSideRight
	Layout7Point1Point4 = Layout7Point1 | ChannelTopFrontLeft | ChannelTopFrontRight |
		ChannelTopBackLeft | ChannelTopBackRight
	LayoutFrontBack     = ChannelFrontCenter | ChannelBackCenter
	Layout13Point360RA  = LayoutStereo | ChannelFrontCenter | ChannelBackLeft | ChannelBackRight |
		ChannelTopFrontLeft | ChannelTopFrontCenter | ChannelTopFrontRight |
		ChannelTopBackLeft | ChannelTopBackRight |
		ChannelBottomFrontLeft | ChannelBottomFrontCenter | ChannelBottomFrontRight
	Layout22Point2 = Layout7Point1Point4 | ChannelFrontLeftOfCenter | ChannelFrontRightOfCenter |
		ChannelBackCenter | ChannelTopCenter | ChannelTopFrontCenter | ChannelTopBackCenter |
		ChannelTopSideLeft | ChannelTopSideRight |
		ChannelBottomFrontLeft | ChannelBottomFrontCenter | ChannelBottomFrontRight |
		ChannelLowFrequency2
	LayoutMonoHapticA    = LayoutMono | ChannelHapticA
	LayoutStereoHapticA  = LayoutStereo | ChannelHapticA
	LayoutHapticAB       = ChannelHapticA | ChannelHapticB
	LayoutMonoHapticAB   = LayoutMono | LayoutHapticAB
	LayoutStereoHapticAB = LayoutStereo | LayoutHapticAB
)

// Voice channel bits for LayoutTagVoiceMask values.
const (
	ChannelVoiceUplink int32 = 0x4000
	ChannelVoiceDnlink int32 = 0x8000
)

// Canonical voice masks.
const (
	VoiceUplinkMono = ChannelVoiceUplink | LayoutMono
	VoiceDnlinkMono = ChannelVoiceDnlink | LayoutMono
	VoiceCallMono   = ChannelVoiceUplink | ChannelVoiceDnlink | LayoutMono
)

// IndexMaskFor returns the index mask selecting channel indexes 0..n-1.
func IndexMaskFor(n int) int32 {
	return int32((uint32(1) << n) - 1)
}

// ChannelLayout is a tagged variant describing a channel configuration.
// The zero value has tag LayoutTagNone.
type ChannelLayout struct {
	tag   LayoutTag
	value int32
}

// MakeLayoutMask returns a layout with tag LayoutTagLayoutMask.
func MakeLayoutMask(mask int32) ChannelLayout {
	return ChannelLayout{tag: LayoutTagLayoutMask, value: mask}
}

// MakeIndexMask returns a layout with tag LayoutTagIndexMask.
func MakeIndexMask(mask int32) ChannelLayout {
	return ChannelLayout{tag: LayoutTagIndexMask, value: mask}
}

// MakeVoiceMask returns a layout with tag LayoutTagVoiceMask.
func MakeVoiceMask(mask int32) ChannelLayout {
	return ChannelLayout{tag: LayoutTagVoiceMask, value: mask}
}

// MakeInvalidLayout returns the invalid-tag marker layout.
func MakeInvalidLayout() ChannelLayout {
	return ChannelLayout{tag: LayoutTagInvalid}
}

// Tag returns the variant discriminator.
func (l ChannelLayout) Tag() LayoutTag { return l.tag }

// Value returns the bitmask payload. It is meaningful only for the mask
// tags and zero otherwise.
func (l ChannelLayout) Value() int32 { return l.value }

// ChannelCount returns the number of channels the layout selects, or zero
// for none/invalid layouts.
func (l ChannelLayout) ChannelCount() int {
	switch l.tag {
	case LayoutTagLayoutMask, LayoutTagIndexMask, LayoutTagVoiceMask:
		return bits.OnesCount32(uint32(l.value))
	default:
		return 0
	}
}

// Hash returns a value hash: equal layouts hash equal.
func (l ChannelLayout) Hash() uint64 {
	h := fnv.New64a()
	var buf [5]byte
	buf[0] = byte(l.tag)
	binary.LittleEndian.PutUint32(buf[1:], uint32(l.value))
	h.Write(buf[:])
	return h.Sum64()
}

func (l ChannelLayout) String() string {
	switch l.tag {
	case LayoutTagNone:
		return "none"
	case LayoutTagInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("%s(%#x)", l.tag, uint32(l.value))
	}
}

// MarshalJSON encodes the layout as a single-key object keyed by the tag
// name, e.g. {"layoutMask":3}.
func (l ChannelLayout) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int32{l.tag.String(): l.value})
}

// UnmarshalJSON decodes the single-key object form produced by
// MarshalJSON. Unknown tags and objects with more than one key are
// rejected.
func (l *ChannelLayout) UnmarshalJSON(data []byte) error {
	var obj map[string]int32
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("channel layout: %w", err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("channel layout: expected one tag, got %d", len(obj))
	}
	for name, value := range obj {
		for tag, tagName := range layoutTagNames {
			if name == tagName {
				l.tag = tag
				l.value = value
				if tag == LayoutTagNone || tag == LayoutTagInvalid {
					l.value = 0
				}
				return nil
			}
		}
		return fmt.Errorf("channel layout: unknown tag %q", name)
	}
	return nil
}
