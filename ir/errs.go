package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/plu/ir/ppath"
)

var (
	// ErrSyntax reports a malformed path expression.
	ErrSyntax = ppath.ErrSyntax
	// ErrResolution reports a path step that cannot be followed.
	ErrResolution = errors.New("resolution error")
	// ErrValueParse reports an index or value literal that does not parse.
	ErrValueParse = errors.New("invalid value")
	// ErrNothingToMutate is returned when SET or REMOVE address the whole
	// document: mutation needs a container and one segment within it.
	ErrNothingToMutate = errors.New("nothing to mutate")
)

// NodeError is returned when a path step fails at a particular node. Node is
// the container (or scalar) the step was applied to and is nil when the
// failure is not tied to a node. Err is ErrResolution or ErrValueParse,
// possibly wrapping a more specific cause.
type NodeError struct {
	Node *Node
	Msg  string
	Err  error
}

func (e *NodeError) Error() string {
	if e.Node == nil || e.Node.Parent == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s (at %s)", e.Msg, e.Node.Path())
}

func (e *NodeError) Unwrap() error { return e.Err }

func resolutionErr(node *Node, format string, args ...any) error {
	return &NodeError{Node: node, Msg: fmt.Sprintf(format, args...), Err: ErrResolution}
}
