// Command hvsc-dump prints what the High Voltage SID Collection knows about
// SID files: header fields, STIL and BUGlist entries and song lengths.
//
// Usage:
//
//	hvsc-dump header Commando.sid
//	hvsc-dump --root /data/C64Music stil MUSICIANS/H/Hubbard_Rob/Commando.sid
//	hvsc-dump --config hvsc.yaml all /MUSICIANS/H/Hubbard_Rob/Commando.sid
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/simonhull/hvscmeta"
)

type globalFlags struct {
	config   string
	root     string
	logLevel string
	encoding string
	strict   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "hvsc-dump",
		Short:         "Dump metadata of High Voltage SID Collection files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "hvsc.yaml configuration file")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", "C64Music directory (overrides the configuration)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.encoding, "encoding", "", "Encoding of header strings and catalog text (latin1, windows-1252, utf8)")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Fail on malformed STIL title timestamps")

	cmd.AddCommand(
		cmdHeader(flags),
		cmdSTIL(flags),
		cmdBugs(flags),
		cmdLengths(flags),
		cmdAll(flags),
		cmdVersion(),
	)
	return cmd
}

func (f *globalFlags) logger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hvsc-dump",
		Level:  hclog.LevelFromString(f.logLevel),
		Output: os.Stderr,
	})
}

func (f *globalFlags) options() []hvscmeta.Option {
	opts := []hvscmeta.Option{hvscmeta.WithLogger(f.logger())}
	if f.encoding != "" {
		opts = append(opts, hvscmeta.WithEncoding(f.encoding))
	}
	if f.strict {
		opts = append(opts, hvscmeta.WithStrictTimestamps())
	}
	return opts
}

// collection opens the collection named by --root, or else the one the
// configuration file and HVSC_* environment describe.
func (f *globalFlags) collection() (*hvscmeta.Collection, error) {
	if f.root != "" {
		return hvscmeta.OpenCollection(f.root, f.options()...)
	}
	coll, err := hvscmeta.LoadCollection(f.config, f.options()...)
	if err != nil {
		return nil, fmt.Errorf("no collection: use --root, --config or HVSC_ROOT: %w", err)
	}
	return coll, nil
}
