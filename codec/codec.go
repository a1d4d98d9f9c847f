package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/plu/debug"
	"github.com/signadot/plu/encode"
	"github.com/signadot/plu/format"
	"github.com/signadot/plu/ir"

	"howett.net/plist"
)

// Decode parses a property list in any format the plist codec detects and
// reports which format it was.
func Decode(data []byte) (*ir.Node, format.Format, error) {
	var v any
	id, err := plist.Unmarshal(data, &v)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: couldn't parse property list: %w", ErrFormat, err)
	}
	f, err := format.FromPlist(id)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if debug.Load() {
		debug.Logger.Debug("decoded", "format", f, "bytes", len(data))
	}
	node, err := FromValue(v)
	if err != nil {
		return nil, 0, err
	}
	return node, f, nil
}

// DecodeValue parses a value literal such as the argument of a set
// operation. Classic text literals yield strings for bare words and numbers.
func DecodeValue(lit string) (*ir.Node, error) {
	node, _, err := Decode([]byte(lit))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ir.ErrValueParse, lit, err)
	}
	return node, nil
}

// Encode writes node to w in format f. Options apply to classic text only.
func Encode(node *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch {
	case f.IsClassic():
		err := encode.Encode(node, w, opts...)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, encode.ErrEncoding):
			return fmt.Errorf("%w: %w", ErrFormat, err)
		default:
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	case f.IsPlist():
		d, err = marshalPlist(node, f)
	case f == format.JSONFormat:
		d, err = marshalJSON(node)
	case f == format.YAMLFormat:
		d, err = marshalYAML(node)
	default:
		return fmt.Errorf("%w: %w: %d", ErrFormat, format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func marshalPlist(node *ir.Node, f format.Format) ([]byte, error) {
	id, err := f.Plist()
	if err != nil {
		return nil, err
	}
	v, err := ToValue(node)
	if err != nil {
		return nil, err
	}
	var d []byte
	if f.IsXML() {
		d, err = plist.MarshalIndent(v, id, "\t")
	} else {
		d, err = plist.Marshal(v, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't create data: %w", ErrFormat, err)
	}
	if f.IsXML() && !bytes.HasSuffix(d, []byte("\n")) {
		d = append(d, '\n')
	}
	return d, nil
}
