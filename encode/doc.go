// Package encode encodes IR nodes to classic (OpenStep style) property list
// text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromInt(1)},
//	    {Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})},
//	})
//	err := encode.Encode(node, os.Stdout)
//
// produces
//
//	{
//	   a = 1;
//	   b = (
//	      2,
//	      3,
//	   );
//	}
//
// Strings are always quoted and escape only backslash, double quote and NUL.
// Data is written as lowercase hex between angle brackets. Booleans, dates
// and other values without a classic syntax get a descriptive rendering
// that is not meant to be parsed back.
//
// # Related Packages
//
//   - github.com/signadot/plu/ir - IR representation
//   - github.com/signadot/plu/codec - binary, XML, JSON and YAML output
package encode
