// SPDX-License-Identifier: EPL-2.0

package audhal

import (
	"fmt"

	"github.com/ik5/audhal/convert"
	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

// PortGainsFromLegacy converts the gain stages of a legacy port descriptor
// to wire form. isInput supplies the direction context for the embedded
// channel masks.
func PortGainsFromLegacy(port legacy.Port, isInput bool) ([]wire.Gain, error) {
	if port.NumGains > legacy.MaxGains {
		return nil, fmt.Errorf("%w: port reports %d gains, at most %d fit",
			convert.ErrUnknownLegacyValue, port.NumGains, legacy.MaxGains)
	}

	gains := make([]wire.Gain, port.NumGains)
	for i := range gains {
		gain, err := convert.GainFromLegacy(port.Gains[i], isInput)
		if err != nil {
			return nil, fmt.Errorf("gain %d: %w", i, err)
		}
		gains[i] = gain
	}
	return gains, nil
}

// PortGainsToLegacy converts wire gain stages into a legacy port
// descriptor. The fixed legacy array caps the stage count at
// legacy.MaxGains.
func PortGainsToLegacy(gains []wire.Gain, isInput bool) (legacy.Port, error) {
	if len(gains) > legacy.MaxGains {
		return legacy.Port{}, fmt.Errorf("%w: %d gains, at most %d fit",
			convert.ErrUnrepresentable, len(gains), legacy.MaxGains)
	}

	var port legacy.Port
	port.NumGains = uint32(len(gains))
	for i, gain := range gains {
		converted, err := convert.GainToLegacy(gain, isInput)
		if err != nil {
			return legacy.Port{}, fmt.Errorf("gain %d: %w", i, err)
		}
		port.Gains[i] = converted
	}
	return port, nil
}
