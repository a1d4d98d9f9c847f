package ir

import "github.com/signadot/plu/debug"

func debugLog(msg string, args ...any) {
	debug.Logger.Debug(msg, args...)
}
