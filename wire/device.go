// SPDX-License-Identifier: EPL-2.0

package wire

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// DeviceType is the enumerated device class of a DeviceDescription.
type DeviceType int32

const (
	DeviceNone DeviceType = iota

	DeviceInDefault
	DeviceInAccessory
	DeviceInBackMic
	DeviceInBus
	DeviceInDevice
	DeviceInFMTuner
	DeviceInHeadset
	DeviceInIP
	DeviceInLoopback
	DeviceInMicrophone
	DeviceInSubmix
	DeviceInTelephonyRx
	DeviceInTVTuner

	DeviceOutDefault
	DeviceOutAccessory
	DeviceOutBus
	DeviceOutCarKit
	DeviceOutDevice
	DeviceOutEarpiece
	DeviceOutFM
	DeviceOutHeadphone
	DeviceOutHeadset
	DeviceOutHearingAid
	DeviceOutIP
	DeviceOutSpeaker
	DeviceOutSpeakerSafe
	DeviceOutSubmix
	DeviceOutTelephonyTx
)

// IsInput reports whether t names an input device class.
func (t DeviceType) IsInput() bool {
	return t >= DeviceInDefault && t <= DeviceInTVTuner
}

// IsOutput reports whether t names an output device class.
func (t DeviceType) IsOutput() bool {
	return t >= DeviceOutDefault && t <= DeviceOutTelephonyTx
}

// Canonical connection names. A connection disambiguates sub-variants of a
// device type; it is empty when the type alone is unambiguous.
const (
	ConnectionAnalog   = "analog"
	ConnectionBTA2DP   = "bt-a2dp"
	ConnectionBTLE     = "bt-le"
	ConnectionBTSCO    = "bt-sco"
	ConnectionBus      = "bus"
	ConnectionHDMI     = "hdmi"
	ConnectionHDMIARC  = "hdmi-arc"
	ConnectionSPDIF    = "spdif"
	ConnectionUSB      = "usb"
	ConnectionIPv4     = "ip-v4"
	ConnectionWireless = "wireless"
)

// DeviceDescription identifies an audio device by class and, where the
// class covers several physical connections, by connection name.
type DeviceDescription struct {
	Type       DeviceType `json:"type"`
	Connection string     `json:"connection,omitempty"`
}

// Hash returns a value hash: equal descriptions hash equal.
func (d DeviceDescription) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(d.Type))
	h.Write(buf[:])
	h.Write([]byte(d.Connection))
	return h.Sum64()
}

func (d DeviceDescription) String() string {
	if d.Connection == "" {
		return fmt.Sprintf("device(%d)", int32(d.Type))
	}
	return fmt.Sprintf("device(%d, %s)", int32(d.Type), d.Connection)
}
