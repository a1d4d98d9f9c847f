package ppath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Segment
	}{
		{
			name: "empty",
			expr: "",
			want: nil,
		},
		{
			name: "dash",
			expr: "-",
			want: nil,
		},
		{
			name: "single key",
			expr: "a",
			want: []Segment{{Sep: '.', Text: "a"}},
		},
		{
			name: "dotted keys",
			expr: "a.b.c",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: "b"}, {Sep: '.', Text: "c"}},
		},
		{
			name: "index",
			expr: "a[2]",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '[', Text: "2"}},
		},
		{
			name: "index then key",
			expr: "a[2].b",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '[', Text: "2"}, {Sep: '.', Text: "b"}},
		},
		{
			name: "consecutive indexes",
			expr: "m[0][1]",
			want: []Segment{{Sep: '.', Text: "m"}, {Sep: '[', Text: "0"}, {Sep: '[', Text: "1"}},
		},
		{
			name: "leading bracket is key text",
			expr: "[3].x",
			want: []Segment{{Sep: '.', Text: "[3]"}, {Sep: '.', Text: "x"}},
		},
		{
			name: "leading bracket key then index",
			expr: "[k][1]",
			want: []Segment{{Sep: '.', Text: "[k]"}, {Sep: '[', Text: "1"}},
		},
		{
			name: "empty index",
			expr: "a[]",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '[', Text: ""}},
		},
		{
			name: "trailing dot",
			expr: "a.",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: ""}},
		},
		{
			name: "quoted key with dots",
			expr: `a."c.d"`,
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: "c.d", Quoted: true}},
		},
		{
			name: "quoted first key",
			expr: `"x[1]".y`,
			want: []Segment{{Sep: '.', Text: "x[1]", Quoted: true}, {Sep: '.', Text: "y"}},
		},
		{
			name: "quoted bracket key",
			expr: `a["k.k"][0]`,
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '[', Text: "k.k", Quoted: true}, {Sep: '[', Text: "0"}},
		},
		{
			name: "glossary example",
			expr: `a.b[2]."c.d"`,
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: "b"}, {Sep: '[', Text: "2"}, {Sep: '.', Text: "c.d", Quoted: true}},
		},
		{
			name: "key starting with separator",
			expr: "a..b",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: ".b"}},
		},
		{
			name: "dash inside path is a key",
			expr: "a.-",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '.', Text: "-"}},
		},
		{
			name: "hex index",
			expr: "a[0x1f]",
			want: []Segment{{Sep: '.', Text: "a"}, {Sep: '[', Text: "0x1f"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`a."b`,
		`"abc`,
		`a[1`,
		`a[`,
		`a[1.5]`,
		`a["k"`,
		`a["k"x].b`,
		`"a"b`,
		`a."b"-`,
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q): expected syntax error, got %v", expr, err)
			}
		})
	}
}

func TestParseDoesNotModifyInput(t *testing.T) {
	expr := `a["k"].b`
	orig := string([]byte(expr))
	segs, err := Parse(expr)
	if err != nil {
		t.Fatal(err)
	}
	if expr != orig {
		t.Errorf("input changed: %q", expr)
	}
	if len(segs) != 3 {
		t.Errorf("expected 3 segments, got %d", len(segs))
	}
}
