package model

// MiB is the unit the upload size ceiling is expressed in.
const MiB = 1024 * 1024

// MaxUploadBytes is the upload size ceiling (10 MiB).
const MaxUploadBytes = 10 * MiB

// AllowedImageMimeTypes is the fixed allow-set for uploaded images.
var AllowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/webp": true,
}

// UploadedImage describes an accepted upload staged on disk. It is owned
// exclusively by the request that created it and is deleted no later than
// end-of-request.
type UploadedImage struct {
	StoragePath string
	MimeType    string
	SizeBytes   int64
}

// StructuredResult is the refined OCR payload delivered to the client.
// Exactly one StructuredResult exists per completed request.
type StructuredResult struct {
	CorrectedText string   `json:"corrected_text"`
	Topics        []string `json:"yks_topics"`
	Note          string   `json:"note,omitempty"`
}

// Fallback notes. The unavailable/unparsable split is deliberate: the note
// tells the caller whether the model never answered or answered garbage.
const (
	NoteTooShort      = "Text too short to categorize"
	NoteAIUnavailable = "AI processing was unavailable; raw OCR text returned"
	NoteAIUnparsable  = "AI responded but the result could not be parsed; raw OCR text returned"
)

// FallbackResult builds a StructuredResult that preserves the raw text
// verbatim with an empty topic list and an explanatory note.
func FallbackResult(raw, note string) StructuredResult {
	return StructuredResult{
		CorrectedText: raw,
		Topics:        []string{},
		Note:          note,
	}
}

// OutcomeKind tags the variants of PipelineOutcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidationRejected
	OutcomeNoTextDetected
	OutcomeUnexpectedFailure
)

// PipelineOutcome is the single value the orchestrator produces per request.
// The HTTP layer maps it to a status and body at one boundary point; it has
// no other consumers.
type PipelineOutcome struct {
	Kind    OutcomeKind
	Result  StructuredResult
	RawText string
	// Warning is set when refinement degraded to a fallback; the request
	// still succeeds.
	Warning string
	// Reason carries the rejection or failure detail for non-success kinds.
	Reason string
}

// SuccessOutcome builds a Success variant.
func SuccessOutcome(result StructuredResult, raw, warning string) PipelineOutcome {
	return PipelineOutcome{
		Kind:    OutcomeSuccess,
		Result:  result,
		RawText: raw,
		Warning: warning,
	}
}

// RejectedOutcome builds a ValidationRejected variant.
func RejectedOutcome(reason string) PipelineOutcome {
	return PipelineOutcome{Kind: OutcomeValidationRejected, Reason: reason}
}

// NoTextOutcome builds a NoTextDetected variant.
func NoTextOutcome() PipelineOutcome {
	return PipelineOutcome{Kind: OutcomeNoTextDetected}
}

// FailureOutcome builds an UnexpectedFailure variant.
func FailureOutcome(reason string) PipelineOutcome {
	return PipelineOutcome{Kind: OutcomeUnexpectedFailure, Reason: reason}
}
