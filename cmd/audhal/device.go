// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audhal/convert"
	"github.com/ik5/audhal/legacy"
)

func newDeviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "device <legacy-device>",
		Short: "Decode a legacy device enumerator into wire JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseLegacyValue(args[0])
			if err != nil {
				return err
			}
			desc, err := convert.DeviceDescriptionFromLegacy(legacy.Devices(raw))
			if err != nil {
				return err
			}
			slog.Debug("decoded device", "legacy", raw,
				"type", int32(desc.Type), "connection", desc.Connection)
			return printJSON(cmd, desc)
		},
	}
}
