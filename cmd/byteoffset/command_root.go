package main

import (
	"github.com/spf13/cobra"

	"go.etcd.io/byteoffset/version"
)

const (
	cliName        = "byteoffset"
	cliDescription = "A simple command line tool for exploring byte offsets of pointers"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     cliName,
		Short:   cliDescription,
		Version: version.Version,
		// main reports the error once; usage is only printed for --help.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newVersionCommand(),
		newInfoCommand(),
		newConvertCommand(),
		newOffsetCommand(),
	)

	return rootCmd
}
