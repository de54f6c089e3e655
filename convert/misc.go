// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

var directModePairs = []struct {
	wire   wire.DirectMode
	legacy legacy.DirectMode
}{
	{wire.DirectModeNone, legacy.DirectNotSupported},
	{wire.DirectModeOffload, legacy.DirectOffload},
	{wire.DirectModeOffloadGapless, legacy.DirectOffloadGapless},
	{wire.DirectModeBitstream, legacy.DirectBitstream},
}

// DirectModeToLegacy converts a wire direct playback mode.
func DirectModeToLegacy(m wire.DirectMode) (legacy.DirectMode, error) {
	for _, p := range directModePairs {
		if p.wire == m {
			return p.legacy, nil
		}
	}
	return 0, fmt.Errorf("%w: direct mode %d", ErrUnrepresentable, int32(m))
}

// DirectModeFromLegacy converts a legacy direct playback mode.
func DirectModeFromLegacy(m legacy.DirectMode) (wire.DirectMode, error) {
	for _, p := range directModePairs {
		if p.legacy == m {
			return p.wire, nil
		}
	}
	return 0, fmt.Errorf("%w: direct mode %#x", ErrUnknownLegacyValue, uint32(m))
}

var standardPairs = []struct {
	wire   wire.Standard
	legacy legacy.Standard
}{
	{wire.StandardNone, legacy.StandardNone},
	{wire.StandardEDID, legacy.StandardEDID},
	{wire.StandardSADB, legacy.StandardSADB},
	{wire.StandardVSADB, legacy.StandardVSADB},
}

// StandardToLegacy converts a wire audio standard.
func StandardToLegacy(s wire.Standard) (legacy.Standard, error) {
	for _, p := range standardPairs {
		if p.wire == s {
			return p.legacy, nil
		}
	}
	return 0, fmt.Errorf("%w: standard %d", ErrUnrepresentable, int32(s))
}

// StandardFromLegacy converts a legacy audio standard.
func StandardFromLegacy(s legacy.Standard) (wire.Standard, error) {
	for _, p := range standardPairs {
		if p.legacy == s {
			return p.wire, nil
		}
	}
	return 0, fmt.Errorf("%w: standard %#x", ErrUnknownLegacyValue, uint32(s))
}

var encapsulationTypePairs = []struct {
	wire   wire.EncapsulationType
	legacy legacy.EncapsulationType
}{
	{wire.EncapsulationTypeNone, legacy.EncapsulationTypeNone},
	{wire.EncapsulationTypeIEC61937, legacy.EncapsulationTypeIEC61937},
	{wire.EncapsulationTypePCM, legacy.EncapsulationTypePCM},
}

// EncapsulationTypeToLegacy converts a wire encapsulation type.
func EncapsulationTypeToLegacy(t wire.EncapsulationType) (legacy.EncapsulationType, error) {
	for _, p := range encapsulationTypePairs {
		if p.wire == t {
			return p.legacy, nil
		}
	}
	return 0, fmt.Errorf("%w: encapsulation type %d", ErrUnrepresentable, int32(t))
}

// EncapsulationTypeFromLegacy converts a legacy encapsulation type.
func EncapsulationTypeFromLegacy(t legacy.EncapsulationType) (wire.EncapsulationType, error) {
	for _, p := range encapsulationTypePairs {
		if p.legacy == t {
			return p.wire, nil
		}
	}
	return 0, fmt.Errorf("%w: encapsulation type %#x", ErrUnknownLegacyValue, uint32(t))
}

var encapsulationMetadataTypePairs = []struct {
	wire   wire.EncapsulationMetadataType
	legacy legacy.EncapsulationMetadataType
}{
	{wire.EncapsulationMetadataTypeNone, legacy.EncapsulationMetadataTypeNone},
	{wire.EncapsulationMetadataTypeFrameworkTuner, legacy.EncapsulationMetadataTypeFrameworkTuner},
	{wire.EncapsulationMetadataTypeDVBADDescriptor, legacy.EncapsulationMetadataTypeDVBADDescriptor},
}

// EncapsulationMetadataTypeToLegacy converts a wire encapsulation metadata
// type.
func EncapsulationMetadataTypeToLegacy(t wire.EncapsulationMetadataType) (legacy.EncapsulationMetadataType, error) {
	for _, p := range encapsulationMetadataTypePairs {
		if p.wire == t {
			return p.legacy, nil
		}
	}
	return 0, fmt.Errorf("%w: encapsulation metadata type %d", ErrUnrepresentable, int32(t))
}

// EncapsulationMetadataTypeFromLegacy converts a legacy encapsulation
// metadata type.
func EncapsulationMetadataTypeFromLegacy(t legacy.EncapsulationMetadataType) (wire.EncapsulationMetadataType, error) {
	for _, p := range encapsulationMetadataTypePairs {
		if p.legacy == t {
			return p.wire, nil
		}
	}
	return 0, fmt.Errorf("%w: encapsulation metadata type %#x", ErrUnknownLegacyValue, uint32(t))
}

// ExtraAudioDescriptorToLegacy converts a wire extra audio descriptor into
// the fixed-size legacy record. Descriptors longer than the legacy array
// are unrepresentable.
func ExtraAudioDescriptorToLegacy(d wire.ExtraAudioDescriptor) (legacy.ExtraAudioDescriptor, error) {
	if len(d.Descriptor) > legacy.ExtraAudioDescriptorSize {
		return legacy.ExtraAudioDescriptor{}, fmt.Errorf("%w: descriptor length %d exceeds %d",
			ErrUnrepresentable, len(d.Descriptor), legacy.ExtraAudioDescriptorSize)
	}
	standard, err := StandardToLegacy(d.Standard)
	if err != nil {
		return legacy.ExtraAudioDescriptor{}, err
	}
	encapsulation, err := EncapsulationTypeToLegacy(d.EncapsulationType)
	if err != nil {
		return legacy.ExtraAudioDescriptor{}, err
	}
	out := legacy.ExtraAudioDescriptor{
		Standard:          standard,
		DescriptorLength:  uint32(len(d.Descriptor)),
		EncapsulationType: encapsulation,
	}
	copy(out.Descriptor[:], d.Descriptor)
	return out, nil
}

// ExtraAudioDescriptorFromLegacy converts a legacy extra audio descriptor
// record to wire form.
func ExtraAudioDescriptorFromLegacy(d legacy.ExtraAudioDescriptor) (wire.ExtraAudioDescriptor, error) {
	if d.DescriptorLength > legacy.ExtraAudioDescriptorSize {
		return wire.ExtraAudioDescriptor{}, fmt.Errorf("%w: descriptor length %d exceeds %d",
			ErrUnknownLegacyValue, d.DescriptorLength, legacy.ExtraAudioDescriptorSize)
	}
	standard, err := StandardFromLegacy(d.Standard)
	if err != nil {
		return wire.ExtraAudioDescriptor{}, err
	}
	encapsulation, err := EncapsulationTypeFromLegacy(d.EncapsulationType)
	if err != nil {
		return wire.ExtraAudioDescriptor{}, err
	}
	descriptor := make([]byte, d.DescriptorLength)
	copy(descriptor, d.Descriptor[:d.DescriptorLength])
	return wire.ExtraAudioDescriptor{
		Standard:          standard,
		Descriptor:        descriptor,
		EncapsulationType: encapsulation,
	}, nil
}

// TrackSecondaryOutputToLegacy converts a wire secondary output routing to
// the legacy pair shape.
func TrackSecondaryOutputToLegacy(info wire.TrackSecondaryOutputInfo) (legacy.TrackSecondaryOutputPair, error) {
	outputs := make([]legacy.IOHandle, len(info.SecondaryOutputIDs))
	for i, id := range info.SecondaryOutputIDs {
		outputs[i] = legacy.IOHandle(id)
	}
	return legacy.TrackSecondaryOutputPair{
		Port:             legacy.PortHandle(info.PortID),
		SecondaryOutputs: outputs,
	}, nil
}

// TrackSecondaryOutputFromLegacy converts a legacy secondary output pair
// to wire form.
func TrackSecondaryOutputFromLegacy(pair legacy.TrackSecondaryOutputPair) (wire.TrackSecondaryOutputInfo, error) {
	ids := make([]int32, len(pair.SecondaryOutputs))
	for i, h := range pair.SecondaryOutputs {
		ids[i] = int32(h)
	}
	return wire.TrackSecondaryOutputInfo{
		PortID:             int32(pair.Port),
		SecondaryOutputIDs: ids,
	}, nil
}

// PortSessionToLegacy wraps a wire session id in the legacy port session
// extension record.
func PortSessionToLegacy(session int32) (legacy.PortSessionExt, error) {
	return legacy.PortSessionExt{Session: session}, nil
}

// PortSessionFromLegacy extracts the wire session id from a legacy port
// session extension record.
func PortSessionFromLegacy(ext legacy.PortSessionExt) (int32, error) {
	return ext.Session, nil
}
