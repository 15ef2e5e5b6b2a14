package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/hvscmeta"
)

func cmdHeader(flags *globalFlags) *cobra.Command {
	var prg string

	cmd := &cobra.Command{
		Use:   "header <file.sid>...",
		Short: "Print the PSID/RSID header of SID files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prg != "" && len(args) != 1 {
				return errors.New("--prg needs exactly one SID file")
			}
			files, err := hvscmeta.OpenMany(cmd.Context(), args, flags.options()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, file := range files {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := file.Dump(out); err != nil {
					return err
				}
				fmt.Fprintf(out, "md5        : %s\n", file.Fingerprint)
			}
			if prg != "" {
				return writeProgram(files[0], prg)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prg, "prg", "", "Also write the C64 program to this file")
	return cmd
}

func writeProgram(file *hvscmeta.File, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = file.WriteProgram(f)
	return err
}

func cmdSTIL(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stil <file.sid|key>",
		Short: "Print the STIL.txt entry of a SID file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := flags.collection()
			if err != nil {
				return err
			}
			entry, err := coll.STIL(args[0])
			if err != nil {
				return err
			}
			return entry.Dump(cmd.OutOrStdout())
		},
	}
}

func cmdBugs(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bugs <file.sid|key>",
		Short: "Print the BUGlist.txt entry of a SID file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := flags.collection()
			if err != nil {
				return err
			}
			entry, err := coll.Bugs(args[0])
			if err != nil {
				return err
			}
			return entry.Dump(cmd.OutOrStdout())
		},
	}
}

func cmdLengths(flags *globalFlags) *cobra.Command {
	var byKey bool

	cmd := &cobra.Command{
		Use:   "lengths <file.sid|key>",
		Short: "Print the song lengths of a SID file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := flags.collection()
			if err != nil {
				return err
			}
			var rec *hvscmeta.DurationRecord
			if byKey {
				rec, err = coll.SongLengthsByKey(args[0])
			} else {
				rec, err = coll.SongLengths(args[0])
			}
			if err != nil {
				return err
			}
			printLengths(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byKey, "by-key", false, "Find the record by path comment instead of the file's MD5")
	return cmd
}

func printLengths(w io.Writer, rec *hvscmeta.DurationRecord) {
	fmt.Fprintf(w, "md5: %s\n", rec.Key)
	for i, secs := range rec.Durations {
		fmt.Fprintf(w, "  #%-3d %s\n", i+1, hvscmeta.FormatSeconds(secs))
	}
}

func cmdAll(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "all <file.sid>...",
		Short: "Print header, STIL, BUGlist and song lengths of SID files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := flags.collection()
			if err != nil {
				return err
			}
			tunes, err := coll.LookupMany(cmd.Context(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, tune := range tunes {
				fmt.Fprintf(out, "=== %s\n\n", tune.Key)
				if err := tune.File.Dump(out); err != nil {
					return err
				}
				if tune.Lengths != nil {
					fmt.Fprintln(out)
					printLengths(out, tune.Lengths)
				}
				if tune.Info != nil {
					fmt.Fprintln(out)
					if err := tune.Info.Dump(out); err != nil {
						return err
					}
				}
				if tune.Bugs != nil {
					fmt.Fprintln(out, "\n{BUGlist}")
					if err := tune.Bugs.Dump(out); err != nil {
						return err
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), hvscmeta.GetVersionInfo())
		},
	}
}
