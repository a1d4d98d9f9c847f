package ir

import (
	"maps"
	"math"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Float64 *float64
	Int64   *int64
	Data    []byte
	Other   any
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromData(d []byte) *Node {
	if d == nil {
		d = []byte{}
	}
	return &Node{Type: DataType, Data: d}
}

// FromOther wraps a value the tree has no dedicated variant for, such as a
// boolean or a date.
func FromOther(v any) *Node {
	return &Node{Type: OtherType, Other: v}
}

func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a dictionary keeping the order of kvs. Later duplicates
// of a key overwrite earlier ones in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   DictType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.SetField(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Get returns the value under field in a dictionary, or nil.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in a dictionary, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// SetField inserts or overwrites field in a dictionary. An overwritten field
// keeps its position.
func (y *Node) SetField(field string, v *Node) {
	i := y.FieldIndex(field)
	if i >= 0 {
		y.adopt(v, i, field)
		y.Values[i] = v
		return
	}
	i = len(y.Fields)
	key := FromString(field)
	y.adopt(key, i, field)
	y.adopt(v, i, field)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// RemoveField deletes field from a dictionary and reports whether it was
// present.
func (y *Node) RemoveField(field string) bool {
	i := y.FieldIndex(field)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	y.renumber(i)
	return true
}

// Append adds v as the last element of an array.
func (y *Node) Append(v *Node) {
	y.adopt(v, len(y.Values), "")
	y.Values = append(y.Values, v)
}

// SetIndex replaces the array element at i.
func (y *Node) SetIndex(i int, v *Node) {
	y.adopt(v, i, "")
	y.Values[i] = v
}

// RemoveIndex deletes the array element at i, shifting later elements down.
func (y *Node) RemoveIndex(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
	y.renumber(i)
}

func (y *Node) adopt(v *Node, i int, field string) {
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
}

func (y *Node) renumber(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
		if i < len(y.Fields) {
			y.Fields[i].ParentIndex = i
		}
	}
}

// Int returns the value of a number node as an int64 when it is exactly
// representable as one.
func (y *Node) Int() (int64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	if y.Float64 == nil {
		return 0, false
	}
	f := *y.Float64
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float returns the value of a number node as a float64.
func (y *Node) Float() float64 {
	switch {
	case y.Float64 != nil:
		return *y.Float64
	case y.Int64 != nil:
		return float64(*y.Int64)
	}
	return 0
}
