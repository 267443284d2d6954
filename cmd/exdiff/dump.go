package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/exdiff-go/pkg/exdiff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/output"
)

func newDumpCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "dump <file.xlsx>",
		Short: "Print every tracked cell of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], v)
		},
	}

	addReadFlags(cmd.Flags())

	return cmd
}

func runDump(cmd *cobra.Command, path string, v *viper.Viper) error {
	s, err := loadSettings(cmd, v)
	if err != nil {
		return err
	}
	opts, err := s.options(s.logger(cmd))
	if err != nil {
		return err
	}

	wb, err := exdiff.ReadWorkbook(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if s.Format == formatJSON {
		data, err := output.ToJSON(wb, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return output.WriteContents(cmd.OutOrStdout(), wb)
}
