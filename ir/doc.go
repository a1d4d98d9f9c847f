// Package ir provides the in-memory representation of property list
// documents and the path evaluator that reads and mutates them.
//
// # Node Structure
//
// A Node is a recursive tagged union: the Type field selects which of the
// other fields hold the value.
//
//   - StringType: String
//   - NumberType: exactly one of Int64 or Float64
//   - DataType: Data
//   - ArrayType: Values, in order
//   - DictType: Fields[i] is the string key for Values[i]
//   - OtherType: Other, for booleans, dates and anything else without a
//     dedicated variant
//
// Each node records its Parent, its ParentIndex within it, and for
// dictionary values the ParentField, so any node can report its Path. The
// mutation helpers (SetField, RemoveField, Append, SetIndex, RemoveIndex)
// keep these links consistent. A tree has exactly one owner and is mutated
// in place.
//
// # Paths
//
// Paths are parsed by package ppath and evaluated here:
//
//	v, err := root.GetPath("apps[0].name")
//	err = root.SetPath("apps[]", ir.FromString("new"))  // append
//	err = root.RemovePath(`prefs."com.example"`)
//
// Failures are *NodeError values; use errors.Is with ErrResolution,
// ErrValueParse, ErrNothingToMutate or ErrSyntax to classify them.
//
// # Related Packages
//
//   - github.com/signadot/plu/ir/ppath - path tokenizer
//   - github.com/signadot/plu/encode - classic text encoding of trees
//   - github.com/signadot/plu/codec - decoding and encoding documents
package ir
