// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audhal/convert"
	"github.com/ik5/audhal/legacy"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <legacy-format>",
		Short: "Decode a legacy format enumerator into wire JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseLegacyValue(args[0])
			if err != nil {
				return err
			}
			desc, err := convert.FormatDescriptionFromLegacy(legacy.Format(raw))
			if err != nil {
				return err
			}
			slog.Debug("decoded format", "legacy", raw, "wire", desc.String())
			return printJSON(cmd, desc)
		},
	}
}
