package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorker struct {
	text       string
	textErr    error
	setImgErr  error
	closeErr   error
	closeCount int
	panicText  bool
}

func (w *fakeWorker) SetImage(path string) error {
	return w.setImgErr
}

func (w *fakeWorker) Text() (string, error) {
	if w.panicText {
		panic("engine crashed")
	}
	return w.text, w.textErr
}

func (w *fakeWorker) Close() error {
	w.closeCount++
	return w.closeErr
}

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))
	return path
}

func TestJanitorReleasesWorkerExactlyOnce(t *testing.T) {
	worker := &fakeWorker{}
	janitor := NewJanitor()
	janitor.TrackWorker(worker)

	janitor.ReleaseWorker()
	janitor.ReleaseWorker()
	janitor.ReleaseAll()

	assert.Equal(t, 1, worker.closeCount)
}

func TestJanitorRemovesFileIdempotently(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "staged.png")

	janitor := NewJanitor()
	janitor.TrackFile(path)

	janitor.RemoveFile()
	assert.NoFileExists(t, path)

	// A second release must be a no-op, not an error.
	janitor.RemoveFile()
	janitor.ReleaseAll()
}

func TestJanitorSwallowsSecondaryFailures(t *testing.T) {
	worker := &fakeWorker{closeErr: errors.New("termination failed")}
	janitor := NewJanitor()
	janitor.TrackWorker(worker)
	janitor.TrackFile(filepath.Join(t.TempDir(), "never-created.png"))

	// Neither the close error nor the missing file may escape.
	janitor.ReleaseAll()

	assert.Equal(t, 1, worker.closeCount)
}

func TestJanitorEmptyReleaseIsSafe(t *testing.T) {
	janitor := NewJanitor()
	janitor.ReleaseAll()
}
