package driven

import "context"

// PlanFile identifies one leaf file inside the plan tree.
type PlanFile struct {
	// Dir is the name of the immediate subdirectory holding the file.
	Dir string

	// Name is the file's own name.
	Name string

	// Path is the full path, usable with Read.
	Path string
}

// PlanSource enumerates and reads a tree of plan files. The collector is
// the only consumer; it never writes through this port.
type PlanSource interface {
	// Root returns the absolute path of the tree's root directory.
	Root() string

	// Directories lists the names of the root's immediate subdirectories.
	// Order is not specified; the collector sorts.
	Directories(ctx context.Context) ([]string, error)

	// Files lists the JSON leaf files of one subdirectory in a
	// deterministic (lexicographic) order.
	Files(ctx context.Context, dir string) ([]PlanFile, error)

	// Read returns the raw bytes of one leaf file.
	Read(ctx context.Context, file PlanFile) ([]byte, error)
}
