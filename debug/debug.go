package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Path bool
	Load bool
	Op   bool
}

var d *debug

// Logger receives debug traces. Time is dropped since traces are read
// alongside the command that produced them.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

func init() {
	d = &debug{}
	d.Path = boolEnv("PLU_DEBUG_PATH")
	d.Load = boolEnv("PLU_DEBUG_LOAD")
	d.Op = boolEnv("PLU_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Path reports whether path evaluation steps are traced.
func Path() bool {
	return d.Path
}

// Load reports whether document loading and format detection are traced.
func Load() bool {
	return d.Load
}

// Op reports whether each operation is traced before it runs.
func Op() bool {
	return d.Op
}
