package format

import (
	"errors"
	"testing"

	"howett.net/plist"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"b", BinaryFormat},
		{"binary", BinaryFormat},
		{"xml", XMLFormat},
		{"o", ClassicFormat},
		{"openstep", ClassicFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestString(t *testing.T) {
	for _, f := range []Format{BinaryFormat, XMLFormat, ClassicFormat, JSONFormat, YAMLFormat} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("got %s want %s", got, f)
		}
	}
	if s := Format(42).String(); s != "<err: 42 is not a format>" {
		t.Errorf("got %q", s)
	}
}

func TestPredicates(t *testing.T) {
	if !BinaryFormat.IsPlist() || !XMLFormat.IsPlist() || ClassicFormat.IsPlist() || JSONFormat.IsPlist() {
		t.Error("IsPlist")
	}
	if !XMLFormat.IsXML() || BinaryFormat.IsXML() {
		t.Error("IsXML")
	}
	if !ClassicFormat.IsClassic() || YAMLFormat.IsClassic() {
		t.Error("IsClassic")
	}
}

func TestFromPlist(t *testing.T) {
	tests := []struct {
		id   int
		want Format
	}{
		{plist.BinaryFormat, BinaryFormat},
		{plist.XMLFormat, XMLFormat},
		{plist.OpenStepFormat, ClassicFormat},
		{plist.GNUStepFormat, ClassicFormat},
	}
	for _, tt := range tests {
		got, err := FromPlist(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("FromPlist(%d) = %s, want %s", tt.id, got, tt.want)
		}
	}
	if _, err := FromPlist(plist.InvalidFormat); err == nil {
		t.Error("expected error for invalid format")
	}
	if _, err := ClassicFormat.Plist(); err == nil {
		t.Error("classic is not a plist codec format")
	}
	if id, err := XMLFormat.Plist(); err != nil || id != plist.XMLFormat {
		t.Errorf("XMLFormat.Plist() = %d, %v", id, err)
	}
}
