package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	bo "go.etcd.io/byteoffset"
)

const intTypes = "int|int8|int16|int32|int64|uint|uint8|uint16|uint32|uint64|uintptr"

type convertOptions struct {
	typ string
}

func (o *convertOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.typ, "type", "t", "int64", "integer type of VALUE: "+intTypes)
}

func newConvertCommand() *cobra.Command {
	o := convertOptions{typ: "int64"}
	convertCmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "convert an integer of the given type to a pointer difference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := convertFunc(args[0], o.typ)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ptrdiff: %d\n", n)
			return nil
		},
	}

	o.AddFlags(convertCmd.Flags())
	return convertCmd
}

// convertFunc parses s as an integer of the named type and converts it with
// bo.Ptrdiff, so the error reports the original type.
func convertFunc(s string, typ string) (int, error) {
	switch typ {
	case "int":
		return convertSigned[int](s, strconv.IntSize)
	case "int8":
		return convertSigned[int8](s, 8)
	case "int16":
		return convertSigned[int16](s, 16)
	case "int32":
		return convertSigned[int32](s, 32)
	case "int64":
		return convertSigned[int64](s, 64)
	case "uint":
		return convertUnsigned[uint](s, strconv.IntSize)
	case "uint8":
		return convertUnsigned[uint8](s, 8)
	case "uint16":
		return convertUnsigned[uint16](s, 16)
	case "uint32":
		return convertUnsigned[uint32](s, 32)
	case "uint64":
		return convertUnsigned[uint64](s, 64)
	case "uintptr":
		return convertUnsigned[uintptr](s, strconv.IntSize)
	default:
		return 0, fmt.Errorf("%w: %q (want %s)", ErrUnknownType, typ, intTypes)
	}
}

func convertSigned[I int | int8 | int16 | int32 | int64](s string, bitSize int) (int, error) {
	v, err := strconv.ParseInt(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", s, err)
	}
	return bo.Ptrdiff(I(v))
}

func convertUnsigned[I uint | uint8 | uint16 | uint32 | uint64 | uintptr](s string, bitSize int) (int, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", s, err)
	}
	return bo.Ptrdiff(I(v))
}
