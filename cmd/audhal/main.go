// SPDX-License-Identifier: EPL-2.0

// Command audhal inspects audio metadata in its wire and legacy
// representations: it converts channel masks, device enumerators and
// format enumerators between the two forms, and probes media files for
// their wire metadata.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "audhal:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "audhal",
		Short:         "Inspect audio metadata in wire and legacy representations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			handler := slog.Handler(slog.DiscardHandler)
			if verbose {
				handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})
			}
			slog.SetDefault(slog.New(handler))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log conversion details to stderr")

	root.AddCommand(
		newMaskCmd(),
		newDeviceCmd(),
		newFormatCmd(),
		newProbeCmd(),
	)
	return root
}

// parseLegacyValue accepts decimal, 0x-hex and octal spellings of a legacy
// 32-bit enumerator.
func parseLegacyValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("not a 32-bit value: %q", s)
	}
	return uint32(v), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(v)
}
