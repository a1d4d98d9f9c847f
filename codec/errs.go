package codec

import "errors"

var (
	// ErrIO reports a failure reading or writing document bytes.
	ErrIO = errors.New("i/o error")
	// ErrFormat reports a document the codec rejects or cannot produce.
	ErrFormat = errors.New("format error")
)
