package ir

type Type int

const (
	StringType Type = iota
	NumberType
	DataType
	ArrayType
	DictType
	OtherType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		DataType:   "Data",
		ArrayType:  "Array",
		DictType:   "Dictionary",
		OtherType:  "Other",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		DataType,
		ArrayType,
		DictType,
		OtherType,
	}
}
