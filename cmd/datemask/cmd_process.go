package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProcessCmd(opts *rootOptions) *cobra.Command {
	var noFinalize bool

	cmd := &cobra.Command{
		Use:   "process <raw>...",
		Short: "Process whole field values in sequence, as if pasted or set externally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.setup(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, raw := range args {
				if err := s.emitResult(raw, s.parser.Process(raw)); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if noFinalize {
				return nil
			}
			if err := s.emitFinalize(s.parser.Finalize()); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noFinalize, "no-finalize", false, "do not finalize after the last value")
	return cmd
}
