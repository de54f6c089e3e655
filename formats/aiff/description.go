// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/ik5/audhal/wire"

// MimeType identifies AIFF content on the wire. AIFF carries plain PCM,
// so unlike the compressed formats it has no legacy format mapping.
const MimeType = "audio/x-aiff"

// Description returns the wire format description of the PCM samples an
// AIFF file carries.
func Description() wire.FormatDescription {
	return wire.PCMFormat(wire.PCMTypeInt16)
}
