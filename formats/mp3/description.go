// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/ik5/audhal/wire"

// MimeType identifies the MPEG audio encoding on the wire.
const MimeType = "audio/mpeg"

// Description returns the wire format description of an MP3 bitstream.
func Description() wire.FormatDescription {
	return wire.BitstreamFormat(MimeType)
}
