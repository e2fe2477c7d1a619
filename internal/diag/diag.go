// Package diag implements the tree-structured diagnostics the
// inference engine reports: an Error carries a location, a message,
// and zero or more children, built by wrapping a child error with a
// context frame as the inferrer unwinds out of a failed subtree.
package diag

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr"
	"go.uber.org/multierr"

	"github.com/specterlang/effectcore/internal/ir"
)

// Error is a node in a diagnostics tree.
type Error struct {
	Location string
	Message  string
	Children []*Error
}

// New creates a leaf error with no children.
func New(location, message string) *Error {
	return &Error{Location: location, Message: message}
}

// Wrap builds a context frame around one or more children, e.g.
// "while inferring effect for X".
func Wrap(location, message string, children ...*Error) *Error {
	return &Error{Location: location, Message: message, Children: children}
}

// Error implements the standard error interface by flattening the
// tree depth-first, one line per node, indented by depth.
func (e *Error) Error() string {
	var b strings.Builder
	e.write(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (e *Error) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s: %s\n", strings.Repeat("  ", depth), e.Location, e.Message)
	for _, c := range e.Children {
		c.write(b, depth+1)
	}
}

// Fatalf returns an error for genuine programmer-contract violations
// (e.g. "fetch result for id X which has no entry") — never for
// ordinary inference failures, which always flow through the per-id
// error map instead. No package in this module calls it: the inferrer
// reports a missing result for an id through the per-id error map.
func Fatalf(format string, args ...any) error {
	return goerr.New(fmt.Sprintf(format, args...))
}

// Collect aggregates every error in a run's per-id error map into one
// multierr-combined error, so a caller that doesn't care about
// per-id correlation can just check err != nil.
func Collect(errs map[ir.ID]*Error) error {
	var combined error
	for _, e := range errs {
		combined = multierr.Append(combined, e)
	}
	return combined
}
