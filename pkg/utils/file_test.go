package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "staging")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStagingFileNameKeepsExtensionAndField(t *testing.T) {
	name := StagingFileName("image", "soru fotoğrafı.jpeg")

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.Equal(t, ".jpeg", filepath.Ext(name))
}

func TestStagingFileNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := StagingFileName("image", "a.png")
		assert.False(t, seen[name], "duplicate staging name %s", name)
		seen[name] = true
	}
}

// brokenReader delivers some bytes and then fails, like a reader backed by
// a connection that drops or a disk that fills mid-copy.
type brokenReader struct {
	data []byte
	err  error
	done bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		n := copy(p, r.data)
		return n, nil
	}
	return 0, r.err
}

func TestWriteStagedFileRemovesPartialFileOnCopyFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.png")
	src := &brokenReader{data: []byte("partial payload"), err: errors.New("disk full")}

	err := writeStagedFile(src, path)

	require.Error(t, err)
	assert.NoFileExists(t, path, "partial staged file must not survive a failed write")
}

func TestWriteStagedFileKeepsCompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.png")

	require.NoError(t, writeStagedFile(strings.NewReader("png-bytes"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.png")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir), "directories are not files")
}
