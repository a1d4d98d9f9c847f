package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/signadot/plu/ir"
)

// jsonNode marshals a tree keeping dictionary order. Data becomes base64
// text and dates RFC 3339 strings, as encoding/json does for those types.
type jsonNode struct {
	*ir.Node
}

func (j jsonNode) MarshalJSON() ([]byte, error) {
	node := j.Node
	switch node.Type {
	case ir.DictType:
		buf := bytes.NewBuffer([]byte{'{'})
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.String)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			v, err := json.Marshal(jsonNode{node.Values[i]})
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case ir.ArrayType:
		values := make([]jsonNode, len(node.Values))
		for i, v := range node.Values {
			values[i] = jsonNode{v}
		}
		return json.Marshal(values)
	case ir.StringType:
		return json.Marshal(node.String)
	case ir.NumberType:
		if node.Int64 != nil {
			return json.Marshal(*node.Int64)
		}
		return json.Marshal(node.Float())
	case ir.DataType:
		return json.Marshal(node.Data)
	case ir.OtherType:
		if t, ok := node.Other.(time.Time); ok {
			return json.Marshal(t.UTC().Format(time.RFC3339))
		}
		return json.Marshal(node.Other)
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrFormat, node.Type)
	}
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	d, err := json.MarshalIndent(jsonNode{node}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't create json: %w", ErrFormat, err)
	}
	return append(d, '\n'), nil
}
