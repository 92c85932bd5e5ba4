package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func interactiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Print the consolidated ranges, then check codes read from stdin",
		Long:    `Interactive prints the consolidated ranges and answers for every code read from stdin until a value <= 0 is entered or the input ends.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			rr, err := a.ranges()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Based on the inputs in %s, the following ranges are consolidated shippable ranges:\n", a.src.Path())
			if err := writeRanges(out, outputText, rr); err != nil {
				return err
			}
			fmt.Fprintln(out, "Please enter the ZipCode of an attempted delivery.")
			return a.loop(cmd.InOrStdin(), out)
		},
	}
}

func (a *app) loop(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		v, err := strconv.Atoi(word)
		if err != nil {
			fmt.Fprintf(out, "%q is not a number.\n", word)
			continue
		}
		if v <= 0 {
			return nil
		}
		ok, err := a.index.CoversValue(v)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		answer(out, v, ok)
	}
	return scanner.Err()
}
