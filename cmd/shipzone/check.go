package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henderiw/shipzone/pkg/zone"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <code>...",
		Short: "Check whether the given codes can be shipped to",
		Long:  `Check prints one answer per code and exits with an error when any code is invalid or cannot be shipped to.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			// load up front so that catalog errors are not reported per code
			if _, err := a.ranges(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				c, err := zone.ParseCode(arg)
				if err != nil {
					fmt.Fprintln(out, err)
					failed++
					continue
				}
				ok, err := a.index.Covers(c)
				if err != nil {
					return err
				}
				answer(out, c.Value(), ok)
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d codes cannot be shipped to", failed, len(args))
			}
			return nil
		},
	}
}
