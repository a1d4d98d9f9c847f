package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/plu/encode"
	"github.com/signadot/plu/format"
	"github.com/signadot/plu/ir"
)

const xmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>b</key>
	<array>
		<integer>2</integer>
		<integer>-3</integer>
	</array>
	<key>a</key>
	<string>x</string>
	<key>t</key>
	<true/>
	<key>d</key>
	<data>AAE=</data>
	<key>r</key>
	<real>1.5</real>
</dict>
</plist>
`

func TestDecodeXML(t *testing.T) {
	node, f, err := Decode([]byte(xmlDoc))
	if err != nil {
		t.Fatal(err)
	}
	if f != format.XMLFormat {
		t.Errorf("format = %s", f)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("x")},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(-3)})},
		{Key: "d", Val: ir.FromData([]byte{0, 1})},
		{Key: "r", Val: ir.FromFloat(1.5)},
		{Key: "t", Val: ir.FromOther(true)},
	})
	if !ir.Equal(want, node) {
		t.Errorf("got:\n%s\nwant:\n%s", encode.MustString(node), encode.MustString(want))
	}
}

func TestDecodeClassic(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "openstep dict",
			in:   `{a = 1; b = (x, "y z"); c = <0a0b>;}`,
			want: "{\n   a = \"1\";\n   b = (\n      \"x\",\n      \"y z\",\n   );\n   c = <0a0b>;\n}",
		},
		{
			name: "gnustep integer",
			in:   `{n = <*I5>;}`,
			want: "{\n   n = 5;\n}",
		},
		{
			name: "bare word",
			in:   `hello`,
			want: `"hello"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, f, err := Decode([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if f != format.ClassicFormat {
				t.Errorf("format = %s", f)
			}
			if diff := cmp.Diff(tt.want, encode.MustString(node)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode([]byte(`{a = "unterminated;}`))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	_, err = DecodeValue(`("a", `)
	if !errors.Is(err, ir.ErrValueParse) {
		t.Errorf("expected ErrValueParse, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), `("a", `) {
		t.Errorf("error does not name the literal: %v", err)
	}
}

func TestDecodeValue(t *testing.T) {
	node, err := DecodeValue(`(1, "two")`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.FromString("two")})
	if !ir.Equal(want, node) {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func testTree() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromOther(true),
			ir.FromData([]byte{1, 2}),
			ir.FromFloat(2.5),
			ir.FromString("s"),
		})},
	})
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.BinaryFormat, format.XMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(testTree(), buf, f); err != nil {
				t.Fatal(err)
			}
			node, got, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatal(err)
			}
			if got != f {
				t.Errorf("format = %s, want %s", got, f)
			}
			// plist dictionaries come back with sorted keys
			want := ir.FromMap(map[string]*ir.Node{
				"a": ir.Get(testTree(), "a"),
				"b": ir.FromInt(1),
			})
			if !ir.Equal(want, node) {
				t.Errorf("got:\n%s\nwant:\n%s", encode.MustString(node), encode.MustString(want))
			}
		})
	}
}

func TestEncodeClassic(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromString("x"), buf, format.ClassicFormat); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\"x\"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(testTree(), buf, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	want := `{
  "b": 1,
  "a": [
    true,
    "AQI=",
    2.5,
    "s"
  ]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(testTree(), buf, format.YAMLFormat); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "b: 1") {
		t.Errorf("missing b: %s", out)
	}
	if strings.Index(out, "b:") > strings.Index(out, "a:") {
		t.Errorf("key order lost: %s", out)
	}
	if !strings.Contains(out, "AQI=") {
		t.Errorf("data not base64: %s", out)
	}
}

func TestValueConversions(t *testing.T) {
	when := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)
	node, err := FromValue(map[string]any{
		"big":  uint64(1) << 63,
		"f32":  float32(0.5),
		"when": when,
	})
	if err != nil {
		t.Fatal(err)
	}
	if big := ir.Get(node, "big"); big.Float64 == nil || *big.Float64 != 9223372036854775808 {
		t.Errorf("big = %+v", big)
	}
	if f := ir.Get(node, "f32"); f.Float() != 0.5 {
		t.Errorf("f32 = %v", f.Float())
	}
	back, err := ToValue(node)
	if err != nil {
		t.Fatal(err)
	}
	m := back.(map[string]any)
	if m["when"] != when {
		t.Errorf("date did not round trip: %v", m["when"])
	}
	if _, err := FromValue(nil); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for nil, got %v", err)
	}
}
