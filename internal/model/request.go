package model

import (
	"errors"
	"strings"
)

// DefaultPersonality is used when the caller does not supply a style descriptor.
const DefaultPersonality = "neutral"

// Validation errors returned before any external call is made.
var (
	ErrMissingText   = errors.New("text content is required")
	ErrMissingAPIKey = errors.New("gemini api key is required")
)

// Upload is one user-supplied reference document.
type Upload struct {
	Filename string
	Data     []byte
}

// GenerationRequest carries all inputs for a single ebook generation.
// Every field comes from the inbound request; nothing is read from
// ambient state during the pipeline run.
type GenerationRequest struct {
	// PrimaryText is the raw submission the ebook is built from.
	PrimaryText string

	// Personality is a free-form style descriptor for both generation passes.
	Personality string

	// GeminiAPIKey authenticates the text-generation calls.
	GeminiAPIKey string

	// OpenAIAPIKey authenticates the cover synthesis. Optional; when empty
	// the document is rendered without a cover.
	OpenAIAPIKey string

	// Model and EditModel override the configured model names for the
	// authoring and editorial passes. EditModel defaults to Model.
	Model     string
	EditModel string

	// OutputPath is where the rendered PDF is written. Relative paths
	// resolve under the configured output root; empty means a unique
	// per-request filename.
	OutputPath string

	// Uploads are reference documents, in submission order.
	Uploads []Upload
}

// Normalize trims all text fields and applies the personality default.
func (r *GenerationRequest) Normalize() {
	r.PrimaryText = strings.TrimSpace(r.PrimaryText)
	r.Personality = strings.TrimSpace(r.Personality)
	r.GeminiAPIKey = strings.TrimSpace(r.GeminiAPIKey)
	r.OpenAIAPIKey = strings.TrimSpace(r.OpenAIAPIKey)
	r.Model = strings.TrimSpace(r.Model)
	r.EditModel = strings.TrimSpace(r.EditModel)
	r.OutputPath = strings.TrimSpace(r.OutputPath)
	if r.Personality == "" {
		r.Personality = DefaultPersonality
	}
}

// Validate rejects requests that must not reach any external collaborator.
func (r *GenerationRequest) Validate() error {
	if r.PrimaryText == "" {
		return ErrMissingText
	}
	if r.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
