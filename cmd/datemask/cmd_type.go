package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newTypeCmd(opts *rootOptions) *cobra.Command {
	var noFinalize bool

	cmd := &cobra.Command{
		Use:   "type [text]",
		Short: "Simulate typing text into the field, one keystroke at a time",
		Long: "Simulate typing text into the field, one keystroke at a time.\n" +
			"Each keystroke is appended to the current display, as a text field would.\n" +
			"Without an argument every line of stdin is typed into a fresh field.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.setup(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			typeLine := func(text string) error {
				for _, r := range text {
					input := s.parser.Display() + string(r)
					if err := s.emitResult(input, s.parser.Type(r)); err != nil {
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
			}
			if len(args) == 1 {
				return typeLine(args[0])
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				s.parser.Reset()
				if err := typeLine(sc.Text()); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noFinalize, "no-finalize", false, "do not finalize after the last keystroke")
	return cmd
}
