package service

import (
	"os"

	"github.com/sorumat/sorumat-go/pkg/utils"
)

// Janitor tracks the transient resources of one request: the staged file
// and the OCR worker. Every release operation is idempotent, so the happy
// path can clean up early and the orchestrator's failure handler can still
// call ReleaseAll as a backstop without double-releasing anything.
type Janitor struct {
	filePath string
	worker   OcrWorker
}

// NewJanitor returns an empty janitor.
func NewJanitor() *Janitor {
	return &Janitor{}
}

// TrackFile registers the staged file for cleanup.
func (j *Janitor) TrackFile(path string) {
	j.filePath = path
}

// TrackWorker registers the OCR worker for termination.
func (j *Janitor) TrackWorker(w OcrWorker) {
	j.worker = w
}

// ReleaseWorker terminates the tracked worker. The handle is dropped before
// Close so the worker is terminated at most once and never reused after
// release; a termination failure is logged and swallowed.
func (j *Janitor) ReleaseWorker() {
	if j.worker == nil {
		return
	}
	w := j.worker
	j.worker = nil
	if err := w.Close(); err != nil {
		utils.Warn("janitor", "failed to terminate OCR worker: %v", err)
	}
}

// RemoveFile deletes the tracked staged file. A deletion failure is logged
// and swallowed; cleanup is never skipped because cleanup itself failed.
func (j *Janitor) RemoveFile() {
	if j.filePath == "" {
		return
	}
	path := j.filePath
	j.filePath = ""
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		utils.Warn("janitor", "failed to delete staged file %s: %v", path, err)
	}
}

// ReleaseAll releases everything still tracked.
func (j *Janitor) ReleaseAll() {
	j.ReleaseWorker()
	j.RemoveFile()
}
