package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/signadot/plu/ir"

	"howett.net/plist"
)

// FromValue converts a value produced by the plist decoder into a tree.
// Dictionary keys are sorted. Unsigned integers that do not fit an int64
// become floats; booleans, dates and UIDs become Other nodes.
func FromValue(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case string:
		return ir.FromString(v), nil
	case int64:
		return ir.FromInt(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return ir.FromFloat(float64(v)), nil
		}
		return ir.FromInt(int64(v)), nil
	case float64:
		return ir.FromFloat(v), nil
	case float32:
		return ir.FromFloat(float64(v)), nil
	case []byte:
		return ir.FromData(v), nil
	case []any:
		values := make([]*ir.Node, len(v))
		for i, elt := range v {
			n, err := FromValue(elt)
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return ir.FromSlice(values), nil
	case map[string]any:
		fields := make(map[string]*ir.Node, len(v))
		for k, elt := range v {
			n, err := FromValue(elt)
			if err != nil {
				return nil, err
			}
			fields[k] = n
		}
		return ir.FromMap(fields), nil
	case bool, time.Time, plist.UID:
		return ir.FromOther(v), nil
	case nil:
		return nil, fmt.Errorf("%w: empty property list value", ErrFormat)
	default:
		return ir.FromOther(v), nil
	}
}

// ToValue converts a tree into values the plist encoder accepts.
func ToValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		return node.Float(), nil
	case ir.DataType:
		return node.Data, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToValue(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.DictType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			v, err := ToValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[f.String] = v
		}
		return res, nil
	case ir.OtherType:
		if node.Other == nil {
			return nil, fmt.Errorf("%w: empty value at %s", ErrFormat, node.Path())
		}
		return node.Other, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s at %s", ErrFormat, node.Type, node.Path())
	}
}
