package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	bo "go.etcd.io/byteoffset"
)

type offsetOptions struct {
	size    int
	from    int
	by      int64
	kind    string
	checked bool
}

func (o *offsetOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.size, "size", "s", o.size, "size in bytes of the buffer to allocate")
	fs.IntVarP(&o.from, "from", "f", o.from, "index of the byte the pointer starts at")
	fs.Int64VarP(&o.by, "by", "b", o.by, "signed byte offset to apply")
	fs.StringVarP(&o.kind, "kind", "k", o.kind, "pointer kind: mut|const|nonnull")
	fs.BoolVar(&o.checked, "checked", o.checked, "validate the address arithmetic before offsetting")
}

func newOffsetCommand() *cobra.Command {
	o := offsetOptions{size: 16, kind: "mut"}
	offsetCmd := &cobra.Command{
		Use:   "offset",
		Short: "offset a pointer into a fresh buffer and print where it lands",
		Long: "offset allocates a buffer holding 0, 1, 2, ... and offsets a pointer of the given kind\n" +
			"at index --from by --by bytes. Offsets leaving the buffer are refused.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return offsetFunc(cmd, o)
		},
	}

	o.AddFlags(offsetCmd.Flags())
	return offsetCmd
}

func offsetFunc(cmd *cobra.Command, cfg offsetOptions) error {
	if cfg.size <= 0 {
		return ErrSizeRequired
	}
	if cfg.from < 0 || cfg.from >= cfg.size {
		return fmt.Errorf("%w: --from %d with --size %d", ErrIndexOutOfRange, cfg.from, cfg.size)
	}
	n, err := bo.Ptrdiff(cfg.by)
	if err != nil {
		return err
	}
	// Go pointers must stay inside their allocation, so refuse the
	// offset before doing any arithmetic.
	if n < -cfg.from || n >= cfg.size-cfg.from {
		return fmt.Errorf("%w: %d + %d not in [0, %d)", ErrOutsideBuffer, cfg.from, n, cfg.size)
	}

	buf := make([]byte, cfg.size)
	for i := range buf {
		buf[i] = byte(i)
	}

	var addr uintptr
	switch cfg.kind {
	case "mut":
		addr, err = applyOffset[bo.Mut[byte]](bo.MutOf(&buf[cfg.from]), n, cfg.checked)
	case "const":
		addr, err = applyOffset[bo.Const[byte]](bo.ConstOf(&buf[cfg.from]), n, cfg.checked)
	case "nonnull":
		addr, err = applyOffset[bo.NonNull[byte]](bo.NonNullOf(&buf[cfg.from]), n, cfg.checked)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, cfg.kind)
	}
	if err != nil {
		return err
	}

	index := int(addr - bo.ConstOf(&buf[0]).Addr())
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Kind:    %s\n", cfg.kind)
	fmt.Fprintf(out, "Checked: %t\n", cfg.checked)
	fmt.Fprintf(out, "From:    %d\n", cfg.from)
	fmt.Fprintf(out, "Offset:  %d\n", n)
	fmt.Fprintf(out, "Index:   %d\n", index)
	fmt.Fprintf(out, "Value:   %d\n", buf[index])
	return nil
}

func applyOffset[Out interface{ Addr() uintptr }](p bo.ByteOffsetter[Out], n int, checked bool) (uintptr, error) {
	var (
		res Out
		err error
	)
	if checked {
		res, err = bo.CheckedByteOffset(p, n)
	} else {
		res, err = bo.UnsafeByteOffset(p, n)
	}
	if err != nil {
		return 0, err
	}
	return res.Addr(), nil
}
