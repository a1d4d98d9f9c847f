package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/plu/encode"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Main *cli.Command

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

func (cfg *MainConfig) getenv(k string) string {
	if cfg.Getenv != nil {
		return cfg.Getenv(k)
	}
	return os.Getenv(k)
}

// colors returns the colors for classic text written to w, or nil.
// PLU_COLOR=always|never overrides NO_COLOR and terminal detection.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	switch cfg.getenv("PLU_COLOR") {
	case "always":
		return encode.NewColors()
	case "never":
		return nil
	}
	if cfg.getenv("NO_COLOR") != "" {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}
