package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sorumat/sorumat-go/pkg/configs"
	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/sorumat/sorumat-go/pkg/utils"
	"google.golang.org/genai"
)

// MinRefineLength is the trimmed-text length below which the model call is
// skipped: fragments shorter than this are not classifiable and the external
// call would be wasted.
const MinRefineLength = 10

// RefineTimeout bounds the wait on the generative model.
const RefineTimeout = 30 * time.Second

// Warnings surfaced at the top level of a degraded success response.
const (
	WarningAIUnavailable = "AI processing unavailable"
	WarningAIUnparsable  = "AI response could not be parsed"
)

const refinePrompt = `The following text was extracted from a photographed YKS exam question using OCR.
Correct OCR-induced spelling and logic errors and return the cleaned question in "corrected_text".
Classify the question into zero or more YKS topic labels in "yks_topics".
Do NOT solve the question and do NOT include its answer anywhere in your output.
Optionally add a short remark in "note".

OCR text:
%s`

// TextGenerator issues one generative-model call for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator backs TextGenerator with the Gemini API using a strict
// JSON response schema.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), refineConfig())
	if err != nil {
		utils.RecordApiCall("gemini", 500, time.Since(start).Seconds())
		return "", err
	}
	utils.RecordApiCall("gemini", 200, time.Since(start).Seconds())
	return resp.Text(), nil
}

// refineConfig is the strict output schema: required corrected_text and
// yks_topics, optional note.
func refineConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"corrected_text": {Type: genai.TypeString},
				"yks_topics": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"note": {Type: genai.TypeString},
			},
			Required: []string{"corrected_text", "yks_topics"},
		},
	}
}

// NewGeminiGenerator builds the production TextGenerator from config.
func NewGeminiGenerator(ctx context.Context, config *configs.EnvConfig) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: config.Gemini.Model}, nil
}

// RefineService turns raw OCR text into a StructuredResult. It never fails
// the request: every failure branch resolves to a fallback result.
type RefineService struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewRefineService creates the refinement stage.
func NewRefineService(generator TextGenerator) *RefineService {
	return &RefineService{generator: generator, timeout: RefineTimeout}
}

type generateResult struct {
	text string
	err  error
}

// Refine refines raw OCR text via the generative model. The returned warning
// is empty on a clean result (including the short-text shortcut) and set when
// the stage degraded to a fallback.
func (s *RefineService) Refine(ctx context.Context, raw string) (model.StructuredResult, string) {
	if len([]rune(raw)) < MinRefineLength {
		return model.FallbackResult(raw, model.NoteTooShort), ""
	}

	prompt := fmt.Sprintf(refinePrompt, raw)

	// Race the model call against a fixed timer. Losing the race abandons
	// the wait without cancelling the call; whatever the abandoned call
	// still consumes downstream is not managed here.
	resultCh := make(chan generateResult, 1)
	go func() {
		text, err := s.generator.Generate(ctx, prompt)
		resultCh <- generateResult{text: text, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			utils.Error("refine", "generative model call failed: %v", res.err)
			return model.FallbackResult(raw, model.NoteAIUnavailable), WarningAIUnavailable
		}
		return s.parseResponse(raw, res.text)
	case <-timer.C:
		utils.Error("refine", "generative model call timed out after %s", s.timeout)
		return model.FallbackResult(raw, model.NoteAIUnavailable), WarningAIUnavailable
	}
}

// parseResponse validates the model payload against the required schema.
// A parse failure is caught independently from a call-level failure and
// degrades with its own note.
func (s *RefineService) parseResponse(raw, payload string) (model.StructuredResult, string) {
	var parsed struct {
		CorrectedText *string  `json:"corrected_text"`
		Topics        []string `json:"yks_topics"`
		Note          string   `json:"note"`
	}

	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		utils.Error("refine", "failed to parse model response: %v", err)
		return model.FallbackResult(raw, model.NoteAIUnparsable), WarningAIUnparsable
	}

	// Required fields per the response schema.
	if parsed.CorrectedText == nil || parsed.Topics == nil {
		utils.Error("refine", "model response missing required fields")
		return model.FallbackResult(raw, model.NoteAIUnparsable), WarningAIUnparsable
	}

	return model.StructuredResult{
		CorrectedText: *parsed.CorrectedText,
		Topics:        parsed.Topics,
		Note:          parsed.Note,
	}, ""
}
