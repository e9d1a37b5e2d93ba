package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelativePath)
	}
	sort.Strings(out)
	return out
}

func TestNewLocal(t *testing.T) {
	t.Run("ValidDirectory", func(t *testing.T) {
		dir := t.TempDir()
		local, err := NewLocal(dir)
		require.NoError(t, err)
		defer local.Close()
		assert.True(t, filepath.IsAbs(local.Root()))
	})

	t.Run("NonExistentPath", func(t *testing.T) {
		_, err := NewLocal(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("FileNotDirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := NewLocal(file)
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := NewLocal("")
		assert.Error(t, err)
	})
}

func TestLocalList(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"file1.txt":             "content1",
		"subdir/file2.txt":      "content2",
		"subdir/deep/file3.txt": "content3",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

	local, err := NewLocal(dir)
	require.NoError(t, err)

	files, err := local.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"file1.txt", "subdir/deep/file3.txt", "subdir/file2.txt"}, relPaths(files))
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f.Path))
		assert.Equal(t, int64(8), f.Size)
	}
}

func TestLocalListSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real.txt": "x", "sub/inner.txt": "y"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "broken.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "linkdir")))

	local, err := NewLocal(dir)
	require.NoError(t, err)

	var skipped []string
	files, err := local.List(context.Background(), func(rel string, err error) {
		skipped = append(skipped, rel)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"link.txt", "real.txt", "sub/inner.txt"}, relPaths(files))
	assert.Equal(t, []string{"broken.txt"}, skipped)
}

func TestLocalListSkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"ok.txt": "x", "locked/secret.txt": "y"})
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	defer os.Chmod(locked, 0755)

	local, err := NewLocal(dir)
	require.NoError(t, err)

	var skipped []string
	files, err := local.List(context.Background(), func(rel string, err error) {
		skipped = append(skipped, rel)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok.txt"}, relPaths(files))
	assert.Equal(t, []string{"locked"}, skipped)
}

func TestLocalListContextCancellation(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "a"})

	local, err := NewLocal(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = local.List(ctx, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLocalOpen(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"sub/a.txt": "hello"})

	local, err := NewLocal(dir)
	require.NoError(t, err)

	t.Run("ReadExistingFile", func(t *testing.T) {
		rc, err := local.Open(context.Background(), "sub/a.txt")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("ReadNonExistentFile", func(t *testing.T) {
		_, err := local.Open(context.Background(), "missing.txt")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestBackendInterface(t *testing.T) {
	var _ Backend = (*Local)(nil)
}
