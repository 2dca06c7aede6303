package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"
	"github.com/sorumat/sorumat-go/pkg/configs"
	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// ErrNoTextDetected marks a successful recognition pass that produced no
// usable text. It is distinct from engine-level failures.
var ErrNoTextDetected = errors.New("no text detected in the image")

// ErrStagedFileMissing marks a staged file that vanished before recognition.
var ErrStagedFileMissing = errors.New("staged file missing before recognition")

// OcrWorker is one running recognition engine instance pinned to a single
// language profile. It must be terminated exactly once and never used after.
type OcrWorker interface {
	SetImage(path string) error
	Text() (string, error)
	Close() error
}

// WorkerFactory acquires a worker for the given language.
type WorkerFactory func(language string) (OcrWorker, error)

// gosseractWorker adapts a gosseract client to OcrWorker.
type gosseractWorker struct {
	client *gosseract.Client
}

func (w *gosseractWorker) SetImage(path string) error {
	return w.client.SetImage(path)
}

func (w *gosseractWorker) Text() (string, error) {
	return w.client.Text()
}

func (w *gosseractWorker) Close() error {
	return w.client.Close()
}

// GosseractFactory builds Tesseract-backed workers.
func GosseractFactory(language string) (OcrWorker, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to configure OCR language %q: %w", language, err)
	}
	return &gosseractWorker{client: client}, nil
}

// OcrService runs a single recognition attempt per request. There is no
// retry and no language fallback; the recognition intent is pinned to the
// configured language.
type OcrService struct {
	factory  WorkerFactory
	language string
}

// NewOcrService creates the OCR stage with the default gosseract factory.
func NewOcrService(config *configs.EnvConfig) *OcrService {
	return &OcrService{
		factory:  GosseractFactory,
		language: config.OCR.Language,
	}
}

// Extract runs recognition against the staged file and returns the trimmed
// text. The worker and the staged file are released before control returns,
// on success and on failure alike; the janitor makes the release idempotent
// so the orchestrator's backstop cannot double-free.
func (s *OcrService) Extract(image *model.UploadedImage, janitor *Janitor) (string, error) {
	janitor.TrackFile(image.StoragePath)
	defer func() {
		janitor.ReleaseWorker()
		janitor.RemoveFile()
	}()

	// The staging write may have failed silently under a concurrent request
	// race; verify the file is still there before feeding it to the engine.
	if !utils.FileExists(image.StoragePath) {
		return "", ErrStagedFileMissing
	}

	worker, err := s.factory(s.language)
	if err != nil {
		return "", fmt.Errorf("failed to acquire OCR worker: %w", err)
	}
	janitor.TrackWorker(worker)

	if err := worker.SetImage(image.StoragePath); err != nil {
		return "", fmt.Errorf("failed to load image into OCR worker: %w", err)
	}

	start := time.Now()
	text, err := worker.Text()
	utils.RecordOcrProcessingTime(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("OCR recognition failed: %w", err)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrNoTextDetected
	}

	return trimmed, nil
}
