package eval

import (
	"errors"
	"fmt"
)

// ErrCacheInvariant signals that evaluating an upstream node did not
// populate the cache entry for one of its outputs. It indicates a bug
// in an operation (an output left unpopulated), never a user error.
var ErrCacheInvariant = errors.New("output cache missing entry after upstream evaluation")

// UnknownPortError reports a port name that does not exist on a node.
type UnknownPortError struct {
	Node string
	Port string
}

func (e *UnknownPortError) Error() string {
	return fmt.Sprintf("node %q has no port %q", e.Node, e.Port)
}

// UnknownKindError reports a node whose kind has no registered
// operation.
type UnknownKindError struct {
	Node string
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("node %q has unknown kind '%s'", e.Node, e.Kind)
}

// CycleError reports a dependency cycle discovered during evaluation.
type CycleError struct {
	Node string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected involving node %q", e.Node)
}
