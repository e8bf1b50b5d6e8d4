// Package engine orchestrates the ebook generation pipeline: reference
// extraction, the two generation passes, cover synthesis, rendering, and
// archiving.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ebookforge/internal/config"
	"ebookforge/internal/extract"
	"ebookforge/internal/model"
	"ebookforge/internal/render"
)

// Pipeline step names, also used by the API layer to pick a status code.
const (
	StepValidate = "validate"
	StepInit     = "init_models"
	StepDraft    = "draft"
	StepRender   = "render"
)

// ErrEmptyDraft is reported when the authoring pass yields no text after
// normalization. Unlike the editorial pass there is no fallback for this.
var ErrEmptyDraft = errors.New("model returned no text for the draft")

// Pipeline runs one generation request from raw inputs to a rendered PDF.
// All collaborators are injected; nothing is read from ambient state.
type Pipeline struct {
	cfg      config.Config
	text     TextModelFactory
	images   ImageClientFactory
	renderer Renderer
	archiver Archiver // nil disables archiving
}

// New creates a pipeline with the given dependencies. archiver may be nil
// when the archive store is not configured.
func New(cfg config.Config, text TextModelFactory, images ImageClientFactory, renderer Renderer, archiver Archiver) *Pipeline {
	return &Pipeline{cfg: cfg, text: text, images: images, renderer: renderer, archiver: archiver}
}

// Run executes the full pipeline for one request.
//
// Validation failures, model construction failures, an empty draft, and
// rendering failures abort the run with a *StepError. The editorial pass,
// cover synthesis, and archiving are best-effort: their failures are logged
// and the run continues with the defined fallback (unedited draft, no
// cover, no persisted record).
func (p *Pipeline) Run(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &StepError{Step: StepValidate, Err: err}
	}

	modelName := req.Model
	if modelName == "" {
		modelName = p.cfg.DefaultModel
	}
	editModelName := req.EditModel
	if editModelName == "" {
		editModelName = p.cfg.DefaultEditModel
	}
	if editModelName == "" {
		editModelName = modelName
	}

	author, err := p.text(req.GeminiAPIKey, modelName)
	if err != nil {
		return nil, &StepError{Step: StepInit, Err: err}
	}
	editor, err := p.text(req.GeminiAPIKey, editModelName)
	if err != nil {
		return nil, &StepError{Step: StepInit, Err: err}
	}

	outputPath, err := render.ResolveOutputPath(p.cfg.OutputDir, req.OutputPath)
	if err != nil {
		return nil, &StepError{Step: StepValidate, Err: err}
	}

	references := extract.Join(extract.FromUploads(req.Uploads))

	draft, err := author.Complete(ctx, buildAuthorPrompt(req.PrimaryText, req.Personality, references))
	if err != nil {
		return nil, &StepError{Step: StepDraft, Err: err}
	}
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return nil, &StepError{Step: StepDraft, Err: ErrEmptyDraft}
	}

	final := p.editDraft(ctx, editor, req.Personality, draft)
	coverHTML := p.synthesizeCover(ctx, req, draft)

	if err := p.renderer.Render(ctx, final, coverHTML, outputPath); err != nil {
		return nil, &StepError{Step: StepRender, Err: err}
	}

	result := &model.GenerationResult{
		DraftMarkdown: draft,
		FinalMarkdown: final,
		References:    references,
		OutputPath:    outputPath,
		Filename:      filepath.Base(outputPath),
	}
	if info, err := os.Stat(outputPath); err == nil {
		result.Size = info.Size()
	}

	p.archive(ctx, req, result)
	return result, nil
}

// editDraft runs the editorial pass. Any failure or empty result falls back
// to the unedited draft; the failure is logged, not surfaced.
func (p *Pipeline) editDraft(ctx context.Context, editor ModelClient, personality, draft string) string {
	edited, err := editor.Complete(ctx, buildEditPrompt(draft, personality))
	if err != nil {
		slog.Warn("editorial pass failed, keeping draft", "error", err)
		return draft
	}
	edited = strings.TrimSpace(edited)
	if edited == "" {
		return draft
	}
	return edited
}

// archive persists the generation record when the store is configured.
// Store failures are logged and never abort the request.
func (p *Pipeline) archive(ctx context.Context, req model.GenerationRequest, res *model.GenerationResult) {
	if p.archiver == nil {
		return
	}
	pdfBytes, err := os.ReadFile(res.OutputPath)
	if err != nil {
		slog.Error("archive skipped, cannot read rendered pdf", "path", res.OutputPath, "error", err)
		return
	}
	rec := model.EbookRecord{
		Personality:   req.Personality,
		InputText:     req.PrimaryText,
		ReferenceText: res.References,
		Markdown:      res.FinalMarkdown,
		PDFFilename:   res.Filename,
		PDFSize:       int64(len(pdfBytes)),
		PDFContent:    pdfBytes,
	}
	if err := p.archiver.Archive(ctx, rec); err != nil {
		slog.Error("could not store generation record", "error", err)
	}
}

// StepError wraps an error with the pipeline step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StepName returns the name of the failed step.
func (e *StepError) StepName() string {
	return e.Step
}
