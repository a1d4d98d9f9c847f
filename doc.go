// Package plu reads, mutates and converts property-list documents.
//
// A [Document] holds the root of a decoded property list together with the
// format it is currently written in. [ParseOps] turns a command line into an
// ordered list of [Op]s and [Document.Run] executes them, printing GET
// results in classic text form and writing the document to files or
// standard output.
//
//	doc, err := plu.Load("Info.plist")
//	...
//	ops, err := plu.ParseOps([]string{"-s", "CFBundleName", "Demo", "-w", "-"})
//	...
//	err = doc.Run(ops)
package plu
