package driven

import "context"

// TreeOp describes what happened to a watched path.
type TreeOp int

const (
	TreeCreated TreeOp = iota
	TreeModified
	TreeDeleted
)

// TreeEvent is one change inside a watched plan tree.
type TreeEvent struct {
	Path string
	Op   TreeOp
}

// TreeWatcher monitors a directory tree and emits change events.
// Used by watch mode to trigger re-collection.
type TreeWatcher interface {
	// Watch starts monitoring root and its immediate subdirectories.
	// The channel closes when ctx is cancelled or the watcher is closed.
	Watch(ctx context.Context, root string) (<-chan TreeEvent, error)

	// Close releases the underlying watches.
	Close() error
}
