// SPDX-License-Identifier: EPL-2.0

package vorbis

import "github.com/ik5/audhal/wire"

// MimeType identifies the Vorbis encoding on the wire.
const MimeType = "audio/vorbis"

// Description returns the wire format description of a Vorbis bitstream.
func Description() wire.FormatDescription {
	return wire.BitstreamFormat(MimeType)
}
