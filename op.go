package plu

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/plu/codec"
	"github.com/signadot/plu/debug"
	"github.com/signadot/plu/format"
)

// OpKind selects what an Op does.
type OpKind int

const (
	GetOp OpKind = iota
	SetOp
	RemoveOp
	WriteOp
)

func (k OpKind) String() string {
	switch k {
	case GetOp:
		return "get"
	case SetOp:
		return "set"
	case RemoveOp:
		return "remove"
	case WriteOp:
		return "write"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one command line operation.
type Op struct {
	Kind OpKind
	// Path is the path expression of get, set and remove.
	Path string
	// Value is the literal stored by set.
	Value string
	// Dest is the destination of write, "-" for standard output.
	Dest string
	// Format, when non-nil, is made the active format before writing.
	Format *format.Format
}

func (op Op) String() string {
	switch op.Kind {
	case SetOp:
		return fmt.Sprintf("set %s %s", op.Path, op.Value)
	case WriteOp:
		if op.Format != nil {
			return fmt.Sprintf("write %s as %s", op.Dest, op.Format)
		}
		return "write " + op.Dest
	default:
		return op.Kind.String() + " " + op.Path
	}
}

// writeFormat reports whether arg is a write flag and the format it forces.
// -w keeps the active format; the others name a format by its letter.
func writeFormat(arg string) (*format.Format, bool) {
	switch arg {
	case "-w":
		return nil, true
	case "-x", "-o", "-b", "-j", "-y":
		f, err := format.ParseFormat(arg[1:])
		if err != nil {
			return nil, false
		}
		return &f, true
	}
	return nil, false
}

// ParseOps parses the operations following the source argument. Any
// argument that is not an option is a GET path.
func ParseOps(args []string) ([]Op, error) {
	var ops []Op
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if f, ok := writeFormat(arg); ok {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: %s requires a destination", cli.ErrUsage, arg)
			}
			i++
			ops = append(ops, Op{Kind: WriteOp, Dest: args[i], Format: f})
			continue
		}
		switch arg {
		case "-s":
			if i+2 >= len(args) {
				return nil, fmt.Errorf("%w: -s requires a path and a value", cli.ErrUsage)
			}
			ops = append(ops, Op{Kind: SetOp, Path: args[i+1], Value: args[i+2]})
			i += 2
		case "-r":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: -r requires a path", cli.ErrUsage)
			}
			i++
			ops = append(ops, Op{Kind: RemoveOp, Path: args[i]})
		default:
			ops = append(ops, Op{Kind: GetOp, Path: arg})
		}
	}
	return ops, nil
}

// HasWrite reports whether ops write the document somewhere.
func HasWrite(ops []Op) bool {
	for _, op := range ops {
		if op.Kind == WriteOp {
			return true
		}
	}
	return false
}

// Apply executes a single op.
func (d *Document) Apply(op Op) error {
	if debug.Op() {
		debug.Logger.Debug("op", "op", op.String(), "format", d.Format)
	}
	switch op.Kind {
	case GetOp:
		return d.Get(op.Path)
	case SetOp:
		return d.Set(op.Path, op.Value)
	case RemoveOp:
		return d.Remove(op.Path)
	case WriteOp:
		if op.Format != nil {
			d.Convert(*op.Format)
		}
		return d.Write(op.Dest)
	default:
		return fmt.Errorf("unknown op kind %s", op.Kind)
	}
}

// Run executes ops in order and stops at the first error. When no op
// writes the document, it is written to Out in classic text at the end.
func (d *Document) Run(ops []Op) error {
	for _, op := range ops {
		if err := d.Apply(op); err != nil {
			return err
		}
	}
	if HasWrite(ops) {
		return nil
	}
	return codec.Encode(d.Root, d.Out, format.ClassicFormat, d.encOpts()...)
}
