package service

import (
	"context"
	"errors"
	"testing"
	"time"

	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	payload string
	err     error
	delay   time.Duration
	calls   int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return g.payload, g.err
}

const longText = "Bir üçgenin iç açıları toplamı kaç derecedir?"

func TestRefineSkipsModelForShortText(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), "2+2=?")

	assert.Equal(t, 0, gen.calls, "short text must not reach the model")
	assert.Empty(t, warning)
	assert.Equal(t, "2+2=?", result.CorrectedText)
	assert.Empty(t, result.Topics)
	assert.Equal(t, model.NoteTooShort, result.Note)
}

func TestRefineParsesStructuredResponse(t *testing.T) {
	gen := &fakeGenerator{payload: `{"corrected_text":"Bir üçgenin iç açıları toplamı kaç derecedir?","yks_topics":["Geometri","Üçgenler"],"note":"clean scan"}`}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), longText)

	assert.Empty(t, warning)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, []string{"Geometri", "Üçgenler"}, result.Topics)
	assert.Equal(t, "clean scan", result.Note)
}

func TestRefineAcceptsEmptyTopicList(t *testing.T) {
	gen := &fakeGenerator{payload: `{"corrected_text":"corrected","yks_topics":[]}`}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), longText)

	assert.Empty(t, warning)
	assert.Equal(t, "corrected", result.CorrectedText)
	assert.Empty(t, result.Topics)
}

func TestRefineDegradesOnCallFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider unreachable")}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), longText)

	assert.Equal(t, WarningAIUnavailable, warning)
	assert.Equal(t, longText, result.CorrectedText, "raw text must be preserved verbatim")
	assert.Empty(t, result.Topics)
	assert.Equal(t, model.NoteAIUnavailable, result.Note)
}

func TestRefineDegradesOnMalformedJSON(t *testing.T) {
	gen := &fakeGenerator{payload: `this is not json`}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), longText)

	assert.Equal(t, WarningAIUnparsable, warning)
	assert.Equal(t, longText, result.CorrectedText)
	assert.Equal(t, model.NoteAIUnparsable, result.Note)
}

func TestRefineDegradesOnMissingRequiredFields(t *testing.T) {
	gen := &fakeGenerator{payload: `{"note":"missing the required fields"}`}
	svc := NewRefineService(gen)

	result, warning := svc.Refine(context.Background(), longText)

	assert.Equal(t, WarningAIUnparsable, warning)
	assert.Equal(t, longText, result.CorrectedText)
}

func TestRefineAbandonsSlowCall(t *testing.T) {
	gen := &fakeGenerator{payload: `{"corrected_text":"late","yks_topics":[]}`, delay: 200 * time.Millisecond}
	svc := NewRefineService(gen)
	svc.timeout = 20 * time.Millisecond

	start := time.Now()
	result, warning := svc.Refine(context.Background(), longText)

	assert.Less(t, time.Since(start), 150*time.Millisecond, "the stage must not wait out the slow call")
	assert.Equal(t, WarningAIUnavailable, warning)
	assert.Equal(t, longText, result.CorrectedText)
	assert.Equal(t, model.NoteAIUnavailable, result.Note)
}

func TestRefineNeverReturnsNilTopics(t *testing.T) {
	for _, gen := range []*fakeGenerator{
		{err: errors.New("down")},
		{payload: "garbage"},
	} {
		svc := NewRefineService(gen)
		result, _ := svc.Refine(context.Background(), longText)
		require.NotNil(t, result.Topics)
	}
}
