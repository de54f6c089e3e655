// SPDX-License-Identifier: EPL-2.0

package legacy

// DirectMode is the legacy audio_direct_mode_t bitmask.
type DirectMode uint32

const (
	DirectNotSupported   DirectMode = 0x0
	DirectOffload        DirectMode = 0x1
	DirectOffloadGapless DirectMode = 0x3
	DirectBitstream      DirectMode = 0x4
)

// Standard is the legacy audio_standard_t enumerator.
type Standard uint32

const (
	StandardNone  Standard = 0
	StandardEDID  Standard = 1
	StandardSADB  Standard = 2
	StandardVSADB Standard = 3
)

// EncapsulationType is the legacy audio_encapsulation_type_t enumerator.
type EncapsulationType uint32

const (
	EncapsulationTypeNone     EncapsulationType = 0
	EncapsulationTypeIEC61937 EncapsulationType = 1
	EncapsulationTypePCM      EncapsulationType = 2
)

// EncapsulationMetadataType is the legacy
// audio_encapsulation_metadata_type_t enumerator.
type EncapsulationMetadataType uint32

const (
	EncapsulationMetadataTypeNone            EncapsulationMetadataType = 0
	EncapsulationMetadataTypeFrameworkTuner  EncapsulationMetadataType = 1
	EncapsulationMetadataTypeDVBADDescriptor EncapsulationMetadataType = 2
)

// ExtraAudioDescriptorSize is the fixed descriptor byte array size.
const ExtraAudioDescriptorSize = 32

// ExtraAudioDescriptor mirrors the legacy audio_extra_audio_descriptor
// record: a raw short audio descriptor with its standard and encapsulation.
type ExtraAudioDescriptor struct {
	Standard          Standard
	DescriptorLength  uint32
	Descriptor        [ExtraAudioDescriptorSize]byte
	EncapsulationType EncapsulationType
}
