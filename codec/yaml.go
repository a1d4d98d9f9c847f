package codec

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/signadot/plu/ir"

	"github.com/goccy/go-yaml"
)

// toYAML converts a tree into values go-yaml encodes with dictionary order
// preserved.
func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.DictType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		return node.Float(), nil
	case ir.DataType:
		return base64.StdEncoding.EncodeToString(node.Data), nil
	case ir.OtherType:
		switch v := node.Other.(type) {
		case bool:
			return v, nil
		case time.Time:
			return v.UTC().Format(time.RFC3339), nil
		default:
			return fmt.Sprint(v), nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrFormat, node.Type)
	}
}

func marshalYAML(node *ir.Node) ([]byte, error) {
	v, err := toYAML(node)
	if err != nil {
		return nil, err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't create yaml: %w", ErrFormat, err)
	}
	return d, nil
}
