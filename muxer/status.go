// SPDX-License-Identifier: EPL-2.0

package muxer

import "fmt"

// Status is the facade's C-style result code. Zero means success; errors
// occupy a reserved negative range.
type Status int32

const (
	StatusOK Status = 0

	StatusUnknown          Status = -10000
	StatusMalformed        Status = -10001
	StatusUnsupported      Status = -10002
	StatusInvalidObject    Status = -10003
	StatusInvalidParameter Status = -10004
	StatusInvalidOperation Status = -10005
	StatusEndOfStream      Status = -10006
	StatusIO               Status = -10007
)

var statusNames = map[Status]string{
	StatusOK:               "ok",
	StatusUnknown:          "unknown error",
	StatusMalformed:        "malformed data",
	StatusUnsupported:      "unsupported",
	StatusInvalidObject:    "invalid object",
	StatusInvalidParameter: "invalid parameter",
	StatusInvalidOperation: "invalid operation",
	StatusEndOfStream:      "end of stream",
	StatusIO:               "i/o error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int32(s))
}
