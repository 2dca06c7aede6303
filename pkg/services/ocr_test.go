package service

import (
	"errors"
	"path/filepath"
	"testing"

	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOcrService(worker *fakeWorker, factoryErr error) *OcrService {
	return &OcrService{
		language: "tur",
		factory: func(language string) (OcrWorker, error) {
			if factoryErr != nil {
				return nil, factoryErr
			}
			return worker, nil
		},
	}
}

func stagedImage(t *testing.T) *model.UploadedImage {
	t.Helper()
	path := writeTempFile(t, t.TempDir(), "staged.png")
	return &model.UploadedImage{StoragePath: path, MimeType: "image/png", SizeBytes: 7}
}

func TestExtractReturnsTrimmedText(t *testing.T) {
	worker := &fakeWorker{text: "  Bir üçgenin iç açıları toplamı kaçtır?\n"}
	svc := newOcrService(worker, nil)
	image := stagedImage(t)
	janitor := NewJanitor()

	text, err := svc.Extract(image, janitor)
	require.NoError(t, err)

	assert.Equal(t, "Bir üçgenin iç açıları toplamı kaçtır?", text)
	// Cleanup happens inside the stage, before control returns.
	assert.Equal(t, 1, worker.closeCount)
	assert.NoFileExists(t, image.StoragePath)
}

func TestExtractClassifiesWhitespaceOnlyAsNoText(t *testing.T) {
	worker := &fakeWorker{text: " \n\t  "}
	svc := newOcrService(worker, nil)
	image := stagedImage(t)
	janitor := NewJanitor()

	_, err := svc.Extract(image, janitor)

	assert.ErrorIs(t, err, ErrNoTextDetected)
	assert.Equal(t, 1, worker.closeCount)
	assert.NoFileExists(t, image.StoragePath)
}

func TestExtractDetectsMissingStagedFile(t *testing.T) {
	worker := &fakeWorker{text: "irrelevant"}
	svc := newOcrService(worker, nil)
	image := &model.UploadedImage{StoragePath: filepath.Join(t.TempDir(), "vanished.png")}
	janitor := NewJanitor()

	_, err := svc.Extract(image, janitor)

	assert.ErrorIs(t, err, ErrStagedFileMissing)
	// No worker was ever acquired for a missing file.
	assert.Equal(t, 0, worker.closeCount)
}

func TestExtractReleasesOnEngineFailure(t *testing.T) {
	worker := &fakeWorker{textErr: errors.New("tesseract exploded")}
	svc := newOcrService(worker, nil)
	image := stagedImage(t)
	janitor := NewJanitor()

	_, err := svc.Extract(image, janitor)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoTextDetected)
	assert.Equal(t, 1, worker.closeCount)
	assert.NoFileExists(t, image.StoragePath)
}

func TestExtractCleansUpWhenWorkerAcquisitionFails(t *testing.T) {
	svc := newOcrService(nil, errors.New("no language pack"))
	image := stagedImage(t)
	janitor := NewJanitor()

	_, err := svc.Extract(image, janitor)

	require.Error(t, err)
	assert.NoFileExists(t, image.StoragePath)
}

func TestExtractReleasesOnLoadFailure(t *testing.T) {
	worker := &fakeWorker{setImgErr: errors.New("unreadable image")}
	svc := newOcrService(worker, nil)
	image := stagedImage(t)
	janitor := NewJanitor()

	_, err := svc.Extract(image, janitor)

	require.Error(t, err)
	assert.Equal(t, 1, worker.closeCount)
	assert.NoFileExists(t, image.StoragePath)
}
