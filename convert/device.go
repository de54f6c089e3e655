// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

type devicePair struct {
	wire   wire.DeviceDescription
	legacy legacy.Devices
}

func dev(t wire.DeviceType, connection string) wire.DeviceDescription {
	return wire.DeviceDescription{Type: t, Connection: connection}
}

// The device table is a closed bidirectional mapping. Unlike channel
// masks, the legacy device space self-describes its direction through the
// input bit, so no direction parameter is needed here.
var devicePairs = []devicePair{
	{dev(wire.DeviceNone, ""), legacy.DeviceNone},

	{dev(wire.DeviceInDefault, ""), legacy.DeviceInDefault},
	{dev(wire.DeviceInAccessory, wire.ConnectionUSB), legacy.DeviceInUSBAccessory},
	{dev(wire.DeviceInBackMic, ""), legacy.DeviceInBackMic},
	{dev(wire.DeviceInBus, ""), legacy.DeviceInBus},
	{dev(wire.DeviceInDevice, wire.ConnectionBTA2DP), legacy.DeviceInBluetoothA2DP},
	{dev(wire.DeviceInDevice, wire.ConnectionHDMI), legacy.DeviceInHDMI},
	{dev(wire.DeviceInDevice, wire.ConnectionHDMIARC), legacy.DeviceInHDMIARC},
	{dev(wire.DeviceInDevice, wire.ConnectionSPDIF), legacy.DeviceInSPDIF},
	{dev(wire.DeviceInDevice, wire.ConnectionUSB), legacy.DeviceInUSBDevice},
	{dev(wire.DeviceInDevice, wire.ConnectionAnalog), legacy.DeviceInLine},
	{dev(wire.DeviceInFMTuner, ""), legacy.DeviceInFMTuner},
	{dev(wire.DeviceInHeadset, wire.ConnectionAnalog), legacy.DeviceInWiredHeadset},
	{dev(wire.DeviceInHeadset, wire.ConnectionBTSCO), legacy.DeviceInBluetoothScoHeadset},
	{dev(wire.DeviceInHeadset, wire.ConnectionUSB), legacy.DeviceInUSBHeadset},
	{dev(wire.DeviceInIP, wire.ConnectionIPv4), legacy.DeviceInIP},
	{dev(wire.DeviceInLoopback, ""), legacy.DeviceInLoopback},
	{dev(wire.DeviceInMicrophone, ""), legacy.DeviceInBuiltinMic},
	{dev(wire.DeviceInSubmix, ""), legacy.DeviceInRemoteSubmix},
	{dev(wire.DeviceInTelephonyRx, ""), legacy.DeviceInTelephonyRx},
	{dev(wire.DeviceInTVTuner, ""), legacy.DeviceInTVTuner},

	{dev(wire.DeviceOutDefault, ""), legacy.DeviceOutDefault},
	{dev(wire.DeviceOutAccessory, wire.ConnectionUSB), legacy.DeviceOutUSBAccessory},
	{dev(wire.DeviceOutBus, ""), legacy.DeviceOutBus},
	{dev(wire.DeviceOutCarKit, wire.ConnectionBTSCO), legacy.DeviceOutBluetoothScoCarKit},
	{dev(wire.DeviceOutDevice, wire.ConnectionAnalog), legacy.DeviceOutLine},
	{dev(wire.DeviceOutDevice, wire.ConnectionBTA2DP), legacy.DeviceOutBluetoothA2DP},
	{dev(wire.DeviceOutDevice, wire.ConnectionHDMI), legacy.DeviceOutHDMI},
	{dev(wire.DeviceOutDevice, wire.ConnectionHDMIARC), legacy.DeviceOutHDMIARC},
	{dev(wire.DeviceOutDevice, wire.ConnectionSPDIF), legacy.DeviceOutSPDIF},
	{dev(wire.DeviceOutDevice, wire.ConnectionUSB), legacy.DeviceOutUSBDevice},
	{dev(wire.DeviceOutEarpiece, ""), legacy.DeviceOutEarpiece},
	{dev(wire.DeviceOutEarpiece, wire.ConnectionBTSCO), legacy.DeviceOutBluetoothSco},
	{dev(wire.DeviceOutFM, ""), legacy.DeviceOutFM},
	{dev(wire.DeviceOutHeadphone, wire.ConnectionAnalog), legacy.DeviceOutWiredHeadphone},
	{dev(wire.DeviceOutHeadphone, wire.ConnectionBTA2DP), legacy.DeviceOutBluetoothA2DPHeadphones},
	{dev(wire.DeviceOutHeadset, wire.ConnectionAnalog), legacy.DeviceOutWiredHeadset},
	{dev(wire.DeviceOutHeadset, wire.ConnectionBTSCO), legacy.DeviceOutBluetoothScoHeadset},
	{dev(wire.DeviceOutHeadset, wire.ConnectionUSB), legacy.DeviceOutUSBHeadset},
	{dev(wire.DeviceOutHearingAid, wire.ConnectionWireless), legacy.DeviceOutHearingAid},
	{dev(wire.DeviceOutIP, wire.ConnectionIPv4), legacy.DeviceOutIP},
	{dev(wire.DeviceOutSpeaker, ""), legacy.DeviceOutSpeaker},
	{dev(wire.DeviceOutSpeaker, wire.ConnectionBTA2DP), legacy.DeviceOutBluetoothA2DPSpeaker},
	{dev(wire.DeviceOutSpeakerSafe, ""), legacy.DeviceOutSpeakerSafe},
	{dev(wire.DeviceOutSubmix, ""), legacy.DeviceOutRemoteSubmix},
	{dev(wire.DeviceOutTelephonyTx, ""), legacy.DeviceOutTelephonyTx},
}

var (
	deviceToLegacy   map[wire.DeviceDescription]legacy.Devices
	deviceFromLegacy map[legacy.Devices]wire.DeviceDescription
)

func init() {
	deviceToLegacy = make(map[wire.DeviceDescription]legacy.Devices, len(devicePairs))
	deviceFromLegacy = make(map[legacy.Devices]wire.DeviceDescription, len(devicePairs))
	for _, p := range devicePairs {
		deviceToLegacy[p.wire] = p.legacy
		deviceFromLegacy[p.legacy] = p.wire
	}
}

// DeviceDescriptionToLegacy converts a wire device description to a legacy
// device enumerator.
func DeviceDescriptionToLegacy(d wire.DeviceDescription) (legacy.Devices, error) {
	if l, ok := deviceToLegacy[d]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnrepresentable, d)
}

// DeviceDescriptionFromLegacy converts a legacy device enumerator to a
// wire device description.
func DeviceDescriptionFromLegacy(d legacy.Devices) (wire.DeviceDescription, error) {
	if w, ok := deviceFromLegacy[d]; ok {
		return w, nil
	}
	return wire.DeviceDescription{}, fmt.Errorf("%w: device %#x", ErrUnknownLegacyValue, uint32(d))
}
