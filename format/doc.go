// Package format names the property list serializations plu reads and writes.
//
// Binary and XML are handled by the external plist codec; classic text,
// JSON and YAML are written by this module.
//
// # Related Packages
//
//   - github.com/signadot/plu/codec - decode and encode documents by format
//   - github.com/signadot/plu/encode - the classic text encoder
package format
