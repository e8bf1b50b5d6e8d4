package engine

import (
	"context"

	"ebookforge/internal/model"
)

// ModelClient abstracts one configured text-generation model.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextModelFactory builds a ModelClient from a per-request credential and
// model name. Construction fails for missing credentials or model names.
type TextModelFactory func(apiKey, modelName string) (ModelClient, error)

// ImageClient abstracts the image-synthesis collaborator. Generate returns
// a base64-encoded PNG payload.
type ImageClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageClientFactory builds an ImageClient from a per-request credential.
type ImageClientFactory func(apiKey string) (ImageClient, error)

// Renderer converts final markdown plus an optional cover fragment into a
// paginated PDF at outputPath.
type Renderer interface {
	Render(ctx context.Context, markdown, coverHTML, outputPath string) error
}

// Archiver persists one generation record. Failures are reported to the
// caller but the pipeline treats archiving as best-effort.
type Archiver interface {
	Archive(ctx context.Context, rec model.EbookRecord) error
}
