package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a DFS run.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex are
	// explored (post-order), before it is appended to Result.Order.
	OnExit func(id string) error

	// FullTraversal restarts DFS from every unvisited vertex in
	// lexicographic order.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hooks and single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFullTraversal covers disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex to its tree depth; roots have depth 0.
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex it was discovered from.
	Parent map[string]string

	// Visited flags the vertices reached.
	Visited map[string]bool
}
