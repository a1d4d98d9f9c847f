// Package codec moves property list documents between bytes and IR trees.
//
// Decoding is delegated to howett.net/plist, which detects binary, XML and
// the OpenStep/GNUStep text dialects. Encoding dispatches on format.Format:
// binary and XML go back through howett.net/plist, classic text goes through
// package encode, and JSON and YAML are produced here.
//
// # Usage
//
//	node, f, err := codec.Decode(data)
//	...
//	err = codec.Encode(node, os.Stdout, f)
//
// # Related Packages
//
//   - github.com/signadot/plu/ir - IR representation
//   - github.com/signadot/plu/encode - classic text encoder
//   - github.com/signadot/plu/format - format names
package codec
