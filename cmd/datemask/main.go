package main

import (
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "datemask",
		Short:         "Incremental date field parser",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	opts.bind(rootCmd)

	rootCmd.AddCommand(newTypeCmd(opts))
	rootCmd.AddCommand(newProcessCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	return rootCmd
}
