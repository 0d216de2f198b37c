package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	intdiv "github.com/shabbyrobe/go-intdiv"
)

// divtable prints the result of dividing two integers with one or all of the
// rounding modes, which is handy when you can't remember which way a tie goes.

const usage = `Division table

Usage: divtable [-dump] <type> <mode|all> <x> <y>

Types: i8 i16 i32 i64 int i128 u8 u16 u32 u64 uint u128
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var dump bool

	fs := flag.NewFlagSet("divtable", flag.ContinueOnError)
	fs.BoolVar(&dump, "dump", false, "Dump each result with spew")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	args = fs.Args()
	if len(args) != 4 {
		fs.Usage()
		return fmt.Errorf("divtable: expected 4 args, found %d", len(args))
	}

	numType, modeStr, xStr, yStr := args[0], args[1], args[2], args[3]

	var modes []intdiv.Mode
	if modeStr == "all" {
		modes = intdiv.Modes()
	} else {
		m, err := intdiv.ParseMode(modeStr)
		if err != nil {
			return err
		}
		modes = []intdiv.Mode{m}
	}

	tbl := table{out: out, modes: modes, dump: dump}

	switch numType {
	case "i8":
		return printSigned[int8](tbl, xStr, yStr, 8)
	case "i16":
		return printSigned[int16](tbl, xStr, yStr, 16)
	case "i32":
		return printSigned[int32](tbl, xStr, yStr, 32)
	case "i64":
		return printSigned[int64](tbl, xStr, yStr, 64)
	case "int":
		return printSigned[int](tbl, xStr, yStr, strconv.IntSize)
	case "i128":
		return printI128(tbl, xStr, yStr)
	case "u8":
		return printUnsigned[uint8](tbl, xStr, yStr, 8)
	case "u16":
		return printUnsigned[uint16](tbl, xStr, yStr, 16)
	case "u32":
		return printUnsigned[uint32](tbl, xStr, yStr, 32)
	case "u64":
		return printUnsigned[uint64](tbl, xStr, yStr, 64)
	case "uint":
		return printUnsigned[uint](tbl, xStr, yStr, strconv.IntSize)
	case "u128":
		return printU128(tbl, xStr, yStr)
	default:
		return fmt.Errorf("divtable: unknown type %q", numType)
	}
}

type table struct {
	out   io.Writer
	modes []intdiv.Mode
	dump  bool
}

func printSigned[T int8 | int16 | int32 | int64 | int](tbl table, xStr, yStr string, bits int) error {
	x, err := strconv.ParseInt(xStr, 10, bits)
	if err != nil {
		return err
	}
	y, err := strconv.ParseInt(yStr, 10, bits)
	if err != nil {
		return err
	}
	return printTable(tbl, T(x), T(y))
}

func printUnsigned[T uint8 | uint16 | uint32 | uint64 | uint](tbl table, xStr, yStr string, bits int) error {
	x, err := strconv.ParseUint(xStr, 10, bits)
	if err != nil {
		return err
	}
	y, err := strconv.ParseUint(yStr, 10, bits)
	if err != nil {
		return err
	}
	return printTable(tbl, T(x), T(y))
}

func printTable[T intdiv.Integer](tbl table, x, y T) error {
	for _, m := range tbl.modes {
		res, err := intdiv.CheckedDivRem(m, x, y)
		if err != nil {
			return err
		}
		fmt.Fprintf(tbl.out, "%-16s %d / %d == %d rem %d\n", m.String()+":", x, y, res.Quo, res.Rem)
		if tbl.dump {
			spew.Fdump(tbl.out, res)
		}
	}
	return nil
}

func printI128(tbl table, xStr, yStr string) error {
	x, accurate, err := intdiv.I128FromString(xStr)
	if err != nil {
		return err
	} else if !accurate {
		return fmt.Errorf("divtable: %q out of range for i128", xStr)
	}
	y, accurate, err := intdiv.I128FromString(yStr)
	if err != nil {
		return err
	} else if !accurate {
		return fmt.Errorf("divtable: %q out of range for i128", yStr)
	}

	for _, m := range tbl.modes {
		q, r, err := x.CheckedQuoRem(m, y)
		if err != nil {
			return err
		}
		fmt.Fprintf(tbl.out, "%-16s %d / %d == %d rem %d\n", m.String()+":", x, y, q, r)
		if tbl.dump {
			spew.Fdump(tbl.out, q, r)
		}
	}
	return nil
}

func printU128(tbl table, xStr, yStr string) error {
	x, accurate, err := intdiv.U128FromString(xStr)
	if err != nil {
		return err
	} else if !accurate {
		return fmt.Errorf("divtable: %q out of range for u128", xStr)
	}
	y, accurate, err := intdiv.U128FromString(yStr)
	if err != nil {
		return err
	} else if !accurate {
		return fmt.Errorf("divtable: %q out of range for u128", yStr)
	}

	for _, m := range tbl.modes {
		q, r, err := x.CheckedQuoRem(m, y)
		if err != nil {
			return err
		}
		fmt.Fprintf(tbl.out, "%-16s %d / %d == %d rem %d\n", m.String()+":", x, y, q, r)
		if tbl.dump {
			spew.Fdump(tbl.out, q, r)
		}
	}
	return nil
}
