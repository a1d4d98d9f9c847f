package format

import (
	"errors"
	"fmt"

	"howett.net/plist"
)

type Format int

const (
	BinaryFormat Format = iota
	XMLFormat
	ClassicFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"b":        BinaryFormat,
		"binary":   BinaryFormat,
		"x":        XMLFormat,
		"xml":      XMLFormat,
		"o":        ClassicFormat,
		"classic":  ClassicFormat,
		"openstep": ClassicFormat,
		"j":        JSONFormat,
		"json":     JSONFormat,
		"y":        YAMLFormat,
		"yaml":     YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case BinaryFormat:
		return []byte("binary"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case ClassicFormat:
		return []byte("classic"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f Format) IsXML() bool { return f == XMLFormat }
func (f Format) IsClassic() bool { return f == ClassicFormat }

// IsPlist reports whether f is written by the external property list codec
// rather than by this module's own encoders.
func (f Format) IsPlist() bool { return f == BinaryFormat || f == XMLFormat }

// FromPlist maps a format id reported by the plist decoder. Both text
// dialects (OpenStep and GNUStep) are classic.
func FromPlist(id int) (Format, error) {
	switch id {
	case plist.BinaryFormat:
		return BinaryFormat, nil
	case plist.XMLFormat:
		return XMLFormat, nil
	case plist.OpenStepFormat, plist.GNUStepFormat:
		return ClassicFormat, nil
	default:
		return 0, fmt.Errorf("%w: plist format id %d", ErrBadFormat, id)
	}
}

// Plist returns the plist codec id for f, for formats the codec writes.
func (f Format) Plist() (int, error) {
	switch f {
	case BinaryFormat:
		return plist.BinaryFormat, nil
	case XMLFormat:
		return plist.XMLFormat, nil
	default:
		return plist.InvalidFormat, fmt.Errorf("%w: %s is not written by the plist codec", ErrBadFormat, f)
	}
}
