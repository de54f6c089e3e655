// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audhal/convert"
	"github.com/ik5/audhal/legacy"
	"github.com/ik5/audhal/wire"
)

func newMaskCmd() *cobra.Command {
	var (
		input    bool
		toLegacy bool
		tag      string
		value    int32
	)

	cmd := &cobra.Command{
		Use:   "mask [legacy-mask]",
		Short: "Convert a channel mask between legacy and wire forms",
		Long: `Decodes a legacy channel mask (hex or decimal) into its wire JSON form.
Input and output masks share numeric values, so --input selects which
direction the mask belongs to.

With --to-legacy the conversion runs the other way: --tag and --value
describe the wire layout and the matching legacy mask is printed in hex.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toLegacy {
				layout, err := layoutFromTag(tag, value)
				if err != nil {
					return err
				}
				mask, err := convert.ChannelLayoutToLegacy(layout, input)
				if err != nil {
					return err
				}
				slog.Debug("encoded channel layout",
					"wire", layout.String(), "legacy", uint32(mask))
				fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", uint32(mask))
				return nil
			}

			if len(args) != 1 {
				return errors.New("legacy mask argument required")
			}
			raw, err := parseLegacyValue(args[0])
			if err != nil {
				return err
			}
			layout, err := convert.ChannelLayoutFromLegacy(legacy.ChannelMask(raw), input)
			if err != nil {
				return err
			}
			slog.Debug("decoded channel mask",
				"legacy", raw, "wire", layout.String())
			return printJSON(cmd, layout)
		},
	}

	cmd.Flags().BoolVar(&input, "input", false,
		"treat the mask as an input (capture) mask")
	cmd.Flags().BoolVar(&toLegacy, "to-legacy", false,
		"convert a wire layout to its legacy mask instead")
	cmd.Flags().StringVar(&tag, "tag", "layoutMask",
		"wire layout tag for --to-legacy (none, invalid, layoutMask, indexMask, voiceMask)")
	cmd.Flags().Int32Var(&value, "value", 0,
		"wire layout bits for --to-legacy")
	return cmd
}

func layoutFromTag(tag string, value int32) (wire.ChannelLayout, error) {
	switch tag {
	case "none":
		return wire.ChannelLayout{}, nil
	case "invalid":
		return wire.MakeInvalidLayout(), nil
	case "layoutMask":
		return wire.MakeLayoutMask(value), nil
	case "indexMask":
		return wire.MakeIndexMask(value), nil
	case "voiceMask":
		return wire.MakeVoiceMask(value), nil
	default:
		return wire.ChannelLayout{}, fmt.Errorf("unknown layout tag %q", tag)
	}
}
