package main

import (
	"github.com/scott-cotton/cli"
)

const description = `plu reads a property list from a file or an inline literal and
applies operations to it in order.

operations:
  -s path value   set the value at path
  -r path         remove the value at path
  -w dest         write the document in its current format
  -x dest         write as XML
  -o dest         write as classic text
  -b dest         write as binary
  -j dest         write as JSON
  -y dest         write as YAML
  path            print the value at path

A dest of - is standard output. Paths are keys and indexes such as
a.b[0]."c.d", with - or the empty path naming the whole document.
Sources starting with ( { " or < are inline literals and are written
as XML by -w. When no operation writes the document it is printed
as classic text at the end.`

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "plu").
		WithSynopsis("plu source [op ...]").
		WithDescription(description).
		WithRun(func(cc *cli.Context, args []string) error {
			return pluMain(cfg, cc, args)
		})
}
