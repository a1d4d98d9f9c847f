package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/plu"
	"github.com/signadot/plu/encode"
	"github.com/signadot/plu/ir"
)

func pluMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		cfg.Main.Usage(cc, fmt.Errorf("%w: missing source", cli.ErrUsage))
		return cli.ExitCodeErr(1)
	}
	switch args[0] {
	case "-h", "-help", "--help":
		cfg.Main.Usage(cc, cli.ErrUsage)
		return cli.ExitCodeErr(1)
	}
	err := run(cfg, cc.Out, args)
	if err == nil {
		return nil
	}
	if errors.Is(err, cli.ErrUsage) {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(os.Stderr, errText(err))
	return cli.ExitCodeErr(1)
}

// run loads the source args[0] and executes the remaining ops, writing
// GET output and "-" writes to w.
func run(cfg *MainConfig, w io.Writer, args []string) error {
	ops, err := plu.ParseOps(args[1:])
	if err != nil {
		return err
	}
	doc, err := plu.Load(args[0])
	if err != nil {
		return err
	}
	doc.Out = w
	doc.Log = theLog
	doc.Colors = cfg.colors(w)
	return doc.Run(ops)
}

// errText renders err for the user. When a path step failed at a node, the
// node's classic text form comes first.
func errText(err error) string {
	ne := &ir.NodeError{}
	if errors.As(err, &ne) && ne.Node != nil {
		return encode.MustString(ne.Node) + "\n" + err.Error()
	}
	return err.Error()
}
