package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/plu/debug"
	"github.com/signadot/plu/ir/ppath"
)

// Mode selects what Eval does at the end of a path.
type Mode int

const (
	GetMode Mode = iota
	SetMode
	RemoveMode
)

func (m Mode) String() string {
	switch m {
	case GetMode:
		return "get"
	case SetMode:
		return "set"
	case RemoveMode:
		return "remove"
	default:
		return "<unknown mode>"
	}
}

// Path returns the path expression addressing y from the root of its tree.
//
// Examples:
//   - Root node → "-"
//   - Dictionary field "a" → "a"
//   - Array element 0 under "a" → "a[0]"
//   - Element 0 of a root array → "0"
//   - Field "c.d" under "a" → `a."c.d"`
func (y *Node) Path() string {
	if y.Parent == nil {
		return "-"
	}
	var prefix string
	if y.Parent.Parent != nil {
		prefix = y.Parent.Path()
	}
	switch y.Parent.Type {
	case DictType:
		f := y.ParentField
		if needsQuote(f) {
			f = `"` + f + `"`
		}
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		if y.Parent.Parent == nil {
			return strconv.Itoa(y.ParentIndex)
		}
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func needsQuote(f string) bool {
	return f == "" || f == "-" || strings.ContainsAny(f, `.["`)
}

// GetPath returns the node addressed by expr. The result is a reference into
// y, not a copy.
func (y *Node) GetPath(expr string) (*Node, error) {
	return y.Eval(expr, GetMode, nil)
}

// SetPath stores v at expr, appending to an array when the final index
// equals its length or is empty.
func (y *Node) SetPath(expr string, v *Node) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrValueParse)
	}
	_, err := y.Eval(expr, SetMode, v)
	return err
}

// RemovePath deletes the element or field addressed by expr. Removing a
// dictionary key that is not present succeeds.
func (y *Node) RemovePath(expr string) error {
	_, err := y.Eval(expr, RemoveMode, nil)
	return err
}

// Eval navigates expr from y and then gets, sets or removes according to
// mode. The path is fully tokenized before navigation starts, and nothing is
// mutated unless the final step succeeds.
func (y *Node) Eval(expr string, mode Mode, v *Node) (*Node, error) {
	segs, err := ppath.Parse(expr)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		if mode != GetMode {
			return nil, &NodeError{
				Msg: fmt.Sprintf("cannot %s the whole document: %s", mode, ErrNothingToMutate),
				Err: fmt.Errorf("%w: %w", ErrResolution, ErrNothingToMutate),
			}
		}
		return y, nil
	}
	node := y
	for i, seg := range segs {
		terminal := i == len(segs)-1
		if debug.Path() {
			debugLog("step", "mode", mode, "seg", seg.String(), "type", node.Type, "terminal", terminal)
		}
		node, err = node.step(seg.Text, mode, terminal, v)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// step applies one segment to y. For a terminal SET or REMOVE it mutates y
// and returns it; otherwise it returns the child the segment addresses.
func (y *Node) step(seg string, mode Mode, terminal bool, v *Node) (*Node, error) {
	mutate := terminal && mode != GetMode
	switch y.Type {
	case ArrayType:
		n := len(y.Values)
		i, err := y.index(seg, mode == SetMode && terminal)
		if err != nil {
			return nil, err
		}
		limit := n
		if mutate && mode == SetMode {
			limit = n + 1
		}
		if i < 0 || i >= int64(limit) {
			return nil, resolutionErr(y, "out of range: %d", i)
		}
		if !mutate {
			return y.Values[i], nil
		}
		switch {
		case mode == RemoveMode:
			y.RemoveIndex(int(i))
		case i == int64(n):
			y.Append(v)
		default:
			y.SetIndex(int(i), v)
		}
		return y, nil

	case DictType:
		if mutate {
			if mode == SetMode {
				y.SetField(seg, v)
			} else {
				y.RemoveField(seg)
			}
			return y, nil
		}
		child := Get(y, seg)
		if child == nil {
			return nil, resolutionErr(y, "no such key: %s", seg)
		}
		return child, nil

	case StringType, NumberType, DataType, OtherType:
		return nil, resolutionErr(y, "cannot index (%s) into %s", seg, y.Type)

	default:
		return nil, resolutionErr(y, "cannot index (%s) into unknown type", seg)
	}
}

// index parses an array index segment. An empty segment is the append
// position when appending is allowed.
func (y *Node) index(seg string, appending bool) (int64, error) {
	if appending && seg == "" {
		return int64(len(y.Values)), nil
	}
	i, err := parseIndex(seg)
	if err == nil {
		return i, nil
	}
	msg := fmt.Sprintf("not a number: <%s>", seg)
	if errors.Is(err, strconv.ErrRange) {
		msg += ": " + strconv.ErrRange.Error()
	}
	return 0, &NodeError{Node: y, Msg: msg, Err: ErrValueParse}
}

// parseIndex reads a decimal, 0x hexadecimal or leading-0 octal integer
// with an optional sign. Other prefixes and digit separators are rejected.
func parseIndex(seg string) (int64, error) {
	s, sign := seg, ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base := 10
	switch {
	case len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		base, s = 16, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, s = 8, s[1:]
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(sign+s, base, 64)
}
