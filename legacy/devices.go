// SPDX-License-Identifier: EPL-2.0

package legacy

// Devices is the legacy audio_devices_t enumerator. A value names a single
// device; the high bits classify it as input and/or default.
type Devices uint32

const (
	DeviceBitIn      Devices = 0x80000000
	DeviceBitDefault Devices = 0x40000000
)

const DeviceNone Devices = 0

// Output devices.
const (
	DeviceOutEarpiece                Devices = 0x1
	DeviceOutSpeaker                 Devices = 0x2
	DeviceOutWiredHeadset            Devices = 0x4
	DeviceOutWiredHeadphone          Devices = 0x8
	DeviceOutBluetoothSco            Devices = 0x10
	DeviceOutBluetoothScoHeadset     Devices = 0x20
	DeviceOutBluetoothScoCarKit      Devices = 0x40
	DeviceOutBluetoothA2DP           Devices = 0x80
	DeviceOutBluetoothA2DPHeadphones Devices = 0x100
	DeviceOutBluetoothA2DPSpeaker    Devices = 0x200
	DeviceOutHDMI                    Devices = 0x400
	DeviceOutUSBAccessory            Devices = 0x2000
	DeviceOutUSBDevice               Devices = 0x4000
	DeviceOutRemoteSubmix            Devices = 0x8000
	DeviceOutTelephonyTx             Devices = 0x10000
	DeviceOutLine                    Devices = 0x20000
	DeviceOutHDMIARC                 Devices = 0x40000
	DeviceOutSPDIF                   Devices = 0x80000
	DeviceOutFM                      Devices = 0x100000
	DeviceOutAuxLine                 Devices = 0x200000
	DeviceOutSpeakerSafe             Devices = 0x400000
	DeviceOutIP                      Devices = 0x800000
	DeviceOutBus                     Devices = 0x1000000
	DeviceOutUSBHeadset              Devices = 0x4000000
	DeviceOutHearingAid              Devices = 0x8000000
	DeviceOutDefault                         = DeviceBitDefault
)

// Input devices.
const (
	DeviceInCommunication       = DeviceBitIn | 0x1
	DeviceInAmbient             = DeviceBitIn | 0x2
	DeviceInBuiltinMic          = DeviceBitIn | 0x4
	DeviceInBluetoothScoHeadset = DeviceBitIn | 0x8
	DeviceInWiredHeadset        = DeviceBitIn | 0x10
	DeviceInHDMI                = DeviceBitIn | 0x20
	DeviceInTelephonyRx         = DeviceBitIn | 0x40
	DeviceInBackMic             = DeviceBitIn | 0x80
	DeviceInRemoteSubmix        = DeviceBitIn | 0x100
	DeviceInUSBAccessory        = DeviceBitIn | 0x800
	DeviceInUSBDevice           = DeviceBitIn | 0x1000
	DeviceInFMTuner             = DeviceBitIn | 0x2000
	DeviceInTVTuner             = DeviceBitIn | 0x4000
	DeviceInLine                = DeviceBitIn | 0x8000
	DeviceInSPDIF               = DeviceBitIn | 0x10000
	DeviceInBluetoothA2DP       = DeviceBitIn | 0x20000
	DeviceInLoopback            = DeviceBitIn | 0x40000
	DeviceInIP                  = DeviceBitIn | 0x80000
	DeviceInBus                 = DeviceBitIn | 0x100000
	DeviceInUSBHeadset          = DeviceBitIn | 0x2000000
	DeviceInHDMIARC             = DeviceBitIn | 0x8000000
	DeviceInDefault             = DeviceBitIn | DeviceBitDefault
)

// IsInput reports whether d names an input device.
func (d Devices) IsInput() bool {
	return d&DeviceBitIn != 0
}
