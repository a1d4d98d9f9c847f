package encode

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/plu/ir"
)

var ErrEncoding = errors.New("encoding error")

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 3

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node as a complete classic document: its encoding at the
// root indentation followed by one newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	s, err := EncodeValue(node, "", opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// EncodeValue returns the encoding of node as it appears nested at the given
// indentation. Nested lines are indented relative to indent; the first line
// is not.
func EncodeValue(node *ir.Node, indent string, opts ...EncodeOption) (string, error) {
	es := newState(opts)
	b := &strings.Builder{}
	if err := encode(b, node, indent, es); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(b *strings.Builder, node *ir.Node, indent string, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.DataType:
		b.WriteString(applyValueColor(es, node.Type, "<"+hex.EncodeToString(node.Data)+">"))
	case ir.StringType:
		b.WriteString(applyValueColor(es, node.Type, quoteString(node.String)))
	case ir.NumberType:
		b.WriteString(applyValueColor(es, node.Type, formatNumber(node)))
	case ir.OtherType:
		b.WriteString(applyValueColor(es, node.Type, describe(node.Other)))
	case ir.ArrayType:
		return encodeArray(b, node, indent, es)
	case ir.DictType:
		return encodeDict(b, node, indent, es)
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
	return nil
}

func encodeArray(b *strings.Builder, node *ir.Node, indent string, es *EncState) error {
	inner := indent + strings.Repeat(" ", DefaultIndent)
	b.WriteString(applySepColor(es, node.Type, "("))
	b.WriteByte('\n')
	for _, v := range node.Values {
		b.WriteString(inner)
		if err := encode(b, v, inner, es); err != nil {
			return err
		}
		b.WriteString(applySepColor(es, node.Type, ","))
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString(applySepColor(es, node.Type, ")"))
	return nil
}

func encodeDict(b *strings.Builder, node *ir.Node, indent string, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: dictionary with %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	inner := indent + strings.Repeat(" ", DefaultIndent)
	b.WriteString(applySepColor(es, node.Type, "{"))
	b.WriteByte('\n')
	for i, f := range node.Fields {
		b.WriteString(inner)
		b.WriteString(applyColor(es, node.Type, FieldColor, quoteKey(f.String)))
		b.WriteString(applySepColor(es, node.Type, " = "))
		if err := encode(b, node.Values[i], inner, es); err != nil {
			return err
		}
		b.WriteString(applySepColor(es, node.Type, ";"))
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString(applySepColor(es, node.Type, "}"))
	return nil
}

// String quoting helpers

func quoteString(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteKey leaves keys made only of characters the classic format allows
// unquoted as they are.
func quoteKey(k string) string {
	if k == "" {
		return quoteString(k)
	}
	for i := 0; i < len(k); i++ {
		if !isUnquotedChar(k[i]) {
			return quoteString(k)
		}
	}
	return k
}

func isUnquotedChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '+', '/', ':', '.', '-':
		return true
	}
	return false
}

func formatNumber(node *ir.Node) string {
	if i, ok := node.Int(); ok {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(node.Float(), 'f', -1, 64)
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "<null>"
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func applySepColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, SepColor, v)
}
