// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gaussteps/numfmt"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>...",
		Short: "Print numbers with the display rule used in traces",
		Example: `  gaussteps format 2.0 0.333333333 -- -1e-10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("format: %q is not a number", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), numfmt.FormatNumber(v))
			}

			return nil
		},
	}
}
