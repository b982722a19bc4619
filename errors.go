package simplegraph

import (
	"fmt"
	"strings"
)

// ErrInvalidArgument indicates that a node could not be constructed from the provided arguments.
type ErrInvalidArgument struct {
	Argument string
	Reason   string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s argument: %s", e.Argument, e.Reason)
}

// ErrTypeMismatch indicates that a value passed as a node does not carry a usable node.
type ErrTypeMismatch struct {
	Expected string
	Got      string
}

func (e ErrTypeMismatch) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// ErrCycleDetected is returned when a walk enters a node that is still open on the current path. Path holds every
// id entered during the walk in traversal order, while Loop holds only the ids forming the cycle, starting and
// ending with the re-entered id.
type ErrCycleDetected struct {
	Path []string
	Loop []string
}

func (e ErrCycleDetected) Error() string {
	if len(e.Loop) == 0 {
		return fmt.Sprintf("circular reference detected: %s", strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf(
		"circular reference detected: %s (loop: %s)",
		strings.Join(e.Path, " -> "),
		strings.Join(e.Loop, " -> "),
	)
}
