// Package ppath tokenizes property list path expressions.
//
// A path is a sequence of segments joined by separators:
//   - .key - Dictionary key (or array index written as a bare number)
//   - [index] - Array index (or dictionary key)
//   - "..." - Quoted segment, taken verbatim up to the next quote
//
// The separator does not decide how a segment is used; the node it is
// applied to does. An empty path or "-" addresses the whole document.
//
// # Usage
//
//	segs, err := ppath.Parse(`apps[2]."com.example.name"`)
//	// segs: .apps [2] ."com.example.name"
//
// # Related Packages
//
//   - github.com/signadot/plu/ir - evaluation of parsed paths against a tree
package ppath
