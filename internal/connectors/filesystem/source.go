// Package filesystem implements the PlanSource port over a local
// directory tree: one level of subdirectories, each holding JSON
// leaf files.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plansift/plansift-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.PlanSource = (*Source)(nil)

// Source reads plan files from a root directory.
type Source struct {
	root string
}

// New creates a source rooted at path. The path is made absolute so the
// aggregate's base_directory field is stable regardless of the working
// directory the CLI ran from.
func New(path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}
	return &Source{root: abs}, nil
}

// Root returns the absolute root path.
func (s *Source) Root() string {
	return s.root
}

// Directories lists the names of the root's immediate subdirectories.
func (s *Source) Directories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.root, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// Files lists the .json files of one subdirectory, lexicographically.
func (s *Source) Files(ctx context.Context, dir string) ([]driven.PlanFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(s.root, dir)
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dirPath, err)
	}

	var files []driven.PlanFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, driven.PlanFile{
			Dir:  dir,
			Name: entry.Name(),
			Path: filepath.Join(dirPath, entry.Name()),
		})
	}

	// os.ReadDir already sorts by name; keep the guarantee explicit.
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

// Read returns the raw bytes of one leaf file.
func (s *Source) Read(ctx context.Context, file driven.PlanFile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(file.Path)
}
