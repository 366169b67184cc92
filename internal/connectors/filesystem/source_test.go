package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plansift/plansift-cli/internal/core/ports/driven"
)

func TestNew_ResolvesAbsolutePath(t *testing.T) {
	source, err := New(".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(source.Root()))
}

func TestNew_ImplementsPlanSource(t *testing.T) {
	source, err := New(t.TempDir())
	require.NoError(t, err)
	var _ driven.PlanSource = source
}

func TestDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.json"), []byte("{}"), 0644))

	source, err := New(root)
	require.NoError(t, err)

	dirs, err := source.Directories(context.Background())
	require.NoError(t, err)

	// Files at the root level are not directories and must not appear.
	assert.ElementsMatch(t, []string{"1", "2"}, dirs)
}

func TestDirectories_MissingRoot(t *testing.T) {
	source, err := New(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	_, err = source.Directories(context.Background())
	require.Error(t, err)
}

func TestFiles_OnlyJSONLexicographic(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "1")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"b.json", "a.json", "notes.txt", "c.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	source, err := New(root)
	require.NoError(t, err)

	files, err := source.Files(context.Background(), "1")
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		assert.Equal(t, "1", f.Dir)
		assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
	}
	assert.Equal(t, []string{"a.json", "b.json", "c.json"}, names)
}

func TestRead(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "7")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p.json"), []byte(`{"id":"x"}`), 0644))

	source, err := New(root)
	require.NoError(t, err)

	files, err := source.Files(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := source.Read(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, `{"id":"x"}`, string(data))
}

func TestRead_CancelledContext(t *testing.T) {
	source, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = source.Read(ctx, driven.PlanFile{Path: "irrelevant"})
	assert.ErrorIs(t, err, context.Canceled)
}
