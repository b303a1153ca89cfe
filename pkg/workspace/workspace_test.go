package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirWrite(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	err = dir.Write(context.Background(), "sess-1", "docs/plan.md", []byte("# Plan"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir.Root(), "sess-1", "docs", "plan.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Plan", string(data))
}

func TestDirWriteStripsLeadingSlash(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	err = dir.Write(context.Background(), "sess-1", "/readme.txt", []byte("hello"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir.Root(), "sess-1", "readme.txt"))
	assert.NoError(t, err)
}

func TestDirWriteOverwrites(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, dir.Write(context.Background(), "s", "a.txt", []byte("one")))
	require.NoError(t, dir.Write(context.Background(), "s", "a.txt", []byte("two")))

	data, err := os.ReadFile(filepath.Join(dir.Root(), "s", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestDirWriteRejectsEscapes(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	for _, path := range []string{
		"../outside.txt",
		"a/../../outside.txt",
		"..",
		"",
		"   ",
	} {
		err := dir.Write(context.Background(), "sess-1", path, []byte("x"))
		assert.Error(t, err, "path %q should be rejected", path)
	}
}

func TestDirWriteRequiresSession(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	err = dir.Write(context.Background(), "", "a.txt", []byte("x"))
	assert.Error(t, err)
}

func TestDirWriteCancelledContext(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = dir.Write(ctx, "sess-1", "a.txt", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
