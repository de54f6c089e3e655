// SPDX-License-Identifier: EPL-2.0

package wire

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// FormatType classifies a FormatDescription.
type FormatType int32

const (
	// FormatTypeSysReservedInvalid marks a format known to be unusable.
	FormatTypeSysReservedInvalid FormatType = -1
	// FormatTypeDefault means unspecified; with a non-empty Encoding it
	// describes a non-PCM (bitstream) format. Zero value.
	FormatTypeDefault FormatType = 0
	// FormatTypeNonPCM is an alias of FormatTypeDefault for readability
	// when the Encoding field is set.
	FormatTypeNonPCM = FormatTypeDefault
	// FormatTypePCM means linear PCM; the PCM field selects the sample
	// representation.
	FormatTypePCM FormatType = 1
)

// PCMType selects the sample representation of a PCM format, or the
// transport representation of an encapsulated bitstream.
type PCMType int32

const (
	PCMTypeUInt8 PCMType = iota
	PCMTypeInt16
	PCMTypeInt32
	PCMTypeFixedQ8_24
	PCMTypeFloat32
	PCMTypeInt24
)

// PCMTypeDefault is the zero PCMType.
const PCMTypeDefault = PCMTypeUInt8

// FormatDescription identifies an audio data format. PCM formats use the
// PCM field; non-PCM formats use Encoding (a MIME-like string), optionally
// combined with a PCM transport type for encapsulated bitstreams. Compound
// encodings layer a modifier over a base encoding as a single
// "+"-concatenated string.
type FormatDescription struct {
	Type     FormatType `json:"type"`
	PCM      PCMType    `json:"pcm"`
	Encoding string     `json:"encoding,omitempty"`
}

// PCMFormat returns the description of a linear PCM format.
func PCMFormat(pcm PCMType) FormatDescription {
	return FormatDescription{Type: FormatTypePCM, PCM: pcm}
}

// BitstreamFormat returns the description of a non-PCM format identified
// by encoding alone.
func BitstreamFormat(encoding string) FormatDescription {
	return FormatDescription{Encoding: encoding}
}

// EncapsulatedFormat returns the description of a bitstream carried over a
// PCM transport.
func EncapsulatedFormat(transport PCMType, encoding string) FormatDescription {
	return FormatDescription{PCM: transport, Encoding: encoding}
}

// Hash returns a value hash: equal descriptions hash equal.
func (f FormatDescription) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(f.Type))
	binary.LittleEndian.PutUint32(buf[4:], uint32(f.PCM))
	h.Write(buf[:])
	h.Write([]byte(f.Encoding))
	return h.Sum64()
}

func (f FormatDescription) String() string {
	switch {
	case f.Type == FormatTypeSysReservedInvalid:
		return "invalid"
	case f.Type == FormatTypePCM:
		return fmt.Sprintf("pcm(%d)", int32(f.PCM))
	case f.Encoding == "":
		return "default"
	case f.PCM != PCMTypeDefault:
		return fmt.Sprintf("%s over pcm(%d)", f.Encoding, int32(f.PCM))
	default:
		return f.Encoding
	}
}
