// SPDX-License-Identifier: EPL-2.0

package wire

import (
	"encoding/json"
	"testing"
)

func layoutSamples() []ChannelLayout {
	return []ChannelLayout{
		{},
		MakeInvalidLayout(),
		MakeLayoutMask(LayoutMono),
		MakeLayoutMask(LayoutStereo),
		MakeLayoutMask(Layout5Point1),
		MakeIndexMask(IndexMaskFor(2)),
		MakeVoiceMask(VoiceUplinkMono),
	}
}

func TestChannelLayout_ZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var l ChannelLayout
	if l.Tag() != LayoutTagNone {
		t.Errorf("zero value tag = %v, want LayoutTagNone", l.Tag())
	}
	if l.Value() != 0 {
		t.Errorf("zero value payload = %#x, want 0", l.Value())
	}
}

func TestChannelLayout_ChannelCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout ChannelLayout
		want   int
	}{
		{"None", ChannelLayout{}, 0},
		{"Invalid", MakeInvalidLayout(), 0},
		{"Mono", MakeLayoutMask(LayoutMono), 1},
		{"Stereo", MakeLayoutMask(LayoutStereo), 2},
		{"5.1", MakeLayoutMask(Layout5Point1), 6},
		{"7.1.4", MakeLayoutMask(Layout7Point1Point4), 12},
		{"22.2", MakeLayoutMask(Layout22Point2), 24},
		{"StereoHapticAB", MakeLayoutMask(LayoutStereoHapticAB), 4},
		{"Index3", MakeIndexMask(IndexMaskFor(3)), 3},
		{"VoiceCallMono", MakeVoiceMask(VoiceCallMono), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.layout.ChannelCount(); got != tt.want {
				t.Errorf("ChannelCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndexMaskFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels int
		want     int32
	}{
		{1, 0x1},
		{2, 0x3},
		{6, 0x3F},
		{8, 0xFF},
	}

	for _, tt := range tests {
		if got := IndexMaskFor(tt.channels); got != tt.want {
			t.Errorf("IndexMaskFor(%d) = %#x, want %#x", tt.channels, got, tt.want)
		}
	}
}

func TestChannelLayout_Hash(t *testing.T) {
	t.Parallel()

	samples := layoutSamples()
	for i, a := range samples {
		if a.Hash() != a.Hash() {
			t.Errorf("Hash() of %s not stable", a)
		}
		for j, b := range samples {
			if i != j && a.Hash() == b.Hash() {
				t.Errorf("Hash() collision between %s and %s", a, b)
			}
		}
	}

	// Same payload, different tag.
	if MakeLayoutMask(0x3).Hash() == MakeIndexMask(0x3).Hash() {
		t.Error("Hash() ignores the tag")
	}
}

func TestChannelLayout_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout ChannelLayout
		want   string
	}{
		{ChannelLayout{}, "none"},
		{MakeInvalidLayout(), "invalid"},
		{MakeLayoutMask(LayoutStereo), "layoutMask(0x3)"},
		{MakeIndexMask(0x3), "indexMask(0x3)"},
		{MakeVoiceMask(VoiceUplinkMono), "voiceMask(0x4001)"},
	}

	for _, tt := range tests {
		if got := tt.layout.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestChannelLayout_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, layout := range layoutSamples() {
		data, err := json.Marshal(layout)
		if err != nil {
			t.Fatalf("Marshal(%s) error = %v", layout, err)
		}

		var back ChannelLayout
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}

		if back != layout {
			t.Errorf("round trip of %s = %s (json %s)", layout, back, data)
		}
	}
}

func TestChannelLayout_MarshalJSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MakeLayoutMask(LayoutStereo))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"layoutMask":3}` {
		t.Errorf("Marshal() = %s, want {\"layoutMask\":3}", data)
	}
}

func TestChannelLayout_UnmarshalJSONRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"UnknownTag", `{"positionMask":3}`},
		{"TwoTags", `{"layoutMask":3,"indexMask":3}`},
		{"EmptyObject", `{}`},
		{"NotAnObject", `"layoutMask"`},
		{"NonNumericValue", `{"layoutMask":"3"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var l ChannelLayout
			if err := json.Unmarshal([]byte(tt.data), &l); err == nil {
				t.Errorf("Unmarshal(%s) error = nil, want error", tt.data)
			}
		})
	}
}
