package main

import (
	"github.com/spf13/cobra"
)

func rangesCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Print the consolidated shippable ranges",
		Long:  `Ranges prints the consolidated shippable ranges. With --raw it prints the selected catalog ranges as they are, sorted by lower then upper bound.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			list := a.ranges
			if raw {
				list = a.rawRanges
			}
			rr, err := list()
			if err != nil {
				return err
			}
			return writeRanges(cmd.OutOrStdout(), output, rr)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the catalog ranges without consolidating them")
	return cmd
}
