// Command shipzone consolidates a catalog of shipping zones and checks
// whether codes can be shipped to.
//
// Usage:
//
//	shipzone [<flags>] ranges [-o text|json|yaml]
//	shipzone [<flags>] check <code>...
//	shipzone [<flags>] interactive
//	shipzone version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile      string
	catalog      string
	selector     string
	emptyCatalog string
	logLevel     string
	logFormat    string
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "shipzone",
		Short:         "Consolidate shipping zones and check codes against them",
		Long:          `shipzone reads a catalog of possibly overlapping shipping zone ranges, reduces it to the minimal set of disjoint ranges and answers whether a code can be shipped to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.envFile, "env-file", "", "path to a .env file (default .env)")
	f.StringVarP(&opts.catalog, "catalog", "c", "", "catalog file, JSON or YAML")
	f.StringVarP(&opts.selector, "selector", "l", "", "label selector applied to catalog entries")
	f.StringVar(&opts.emptyCatalog, "empty-catalog", "", `empty catalog policy, "empty" or "error"`)
	f.StringVar(&opts.logLevel, "log-level", "", "log level")
	f.StringVar(&opts.logFormat, "log-format", "", `log format, "console" or "json"`)

	cmd.AddCommand(rangesCmd(opts))
	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(interactiveCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}
