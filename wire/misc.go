// SPDX-License-Identifier: EPL-2.0

package wire

// DirectMode enumerates direct playback capabilities.
type DirectMode int32

const (
	DirectModeNone           DirectMode = 0
	DirectModeOffload        DirectMode = 1
	DirectModeOffloadGapless DirectMode = 3
	DirectModeBitstream      DirectMode = 4
)

// Standard enumerates the standard an extra audio descriptor conforms to.
type Standard int32

const (
	StandardNone  Standard = 0
	StandardEDID  Standard = 1
	StandardSADB  Standard = 2
	StandardVSADB Standard = 3
)

// EncapsulationType enumerates how a bitstream is encapsulated.
type EncapsulationType int32

const (
	EncapsulationTypeNone     EncapsulationType = 0
	EncapsulationTypeIEC61937 EncapsulationType = 1
	EncapsulationTypePCM      EncapsulationType = 2
)

// EncapsulationMetadataType enumerates metadata carried alongside an
// encapsulated stream.
type EncapsulationMetadataType int32

const (
	EncapsulationMetadataTypeNone            EncapsulationMetadataType = 0
	EncapsulationMetadataTypeFrameworkTuner  EncapsulationMetadataType = 1
	EncapsulationMetadataTypeDVBADDescriptor EncapsulationMetadataType = 2
)

// ExtraAudioDescriptor carries a raw short audio descriptor reported by a
// sink, together with the standard it conforms to and its encapsulation.
type ExtraAudioDescriptor struct {
	Standard          Standard          `json:"standard"`
	Descriptor        []byte            `json:"descriptor"`
	EncapsulationType EncapsulationType `json:"encapsulationType"`
}

// TrackSecondaryOutputInfo routes a track's port to the secondary outputs
// it should be mirrored to. Order of the output ids is preserved.
type TrackSecondaryOutputInfo struct {
	PortID             int32   `json:"portId"`
	SecondaryOutputIDs []int32 `json:"secondaryOutputIds"`
}
