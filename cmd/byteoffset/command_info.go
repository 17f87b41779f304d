package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.etcd.io/byteoffset/internal/common"
)

func newInfoCommand() *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print pointer and page sizes of this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pointer size: %d bytes\n", common.PointerSize)
			fmt.Fprintf(out, "Ptrdiff:      %d bits [%d, %d]\n", common.PtrdiffBits, common.MinPtrdiff, common.MaxPtrdiff)
			fmt.Fprintf(out, "Page size:    %d bytes\n", common.GetPagesize())
			return nil
		},
	}

	return infoCmd
}
