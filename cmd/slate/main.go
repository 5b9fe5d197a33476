package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slatelang/slate/compiler/typeexpr"
	"github.com/slatelang/slate/compiler/types"
)

func main() {
	describeCmd := &cli.Command{
		Name:   "describe",
		Action: describeAct,
		Args:   cli.Args{},
	}

	layoutCmd := &cli.Command{
		Name:   "layout",
		Action: layoutAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "slate",
		Description: "slate is a tool for inspecting slate types",
		Commands: []*cli.Command{
			describeCmd,
			layoutCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func describeAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	r := types.NewRegistry()

	for _, a := range c.Args {
		t, err := typeexpr.ParseString(ctx, r, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		if !t.HasSize() {
			fmt.Printf("%v: kind %v, no static size\n", t, t.Kind())
			continue
		}

		fmt.Printf("%v: kind %v, size %d, align %d\n", t, t.Kind(), t.Size(), t.Align())
	}

	tlog.SpanFromContext(ctx).Printw("registry", "types", r.TypeCount())

	return nil
}

func layoutAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	r := types.NewRegistry()

	for _, a := range c.Args {
		t, err := typeexpr.ParseString(ctx, r, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		switch t := t.(type) {
		case *types.Struct:
			fmt.Printf("%v: size %d, align %d\n", t, t.Size(), t.Align())

			for _, f := range t.Fields {
				fmt.Printf("  %4d  %v %v\n", t.FieldOffset(f.Name), f.Name, f.Type)
			}
		case *types.Tuple:
			fmt.Printf("%v: size %d, align %d\n", t, t.Size(), t.Align())

			for i, e := range t.Elems {
				fmt.Printf("  %4d  %v\n", t.ElemOffset(i), e)
			}
		default:
			return errors.New("struct or tuple expected, got %v", t.Kind())
		}
	}

	return nil
}
