package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ebookforge/internal/model"
)

// fallbackCoverTitle is used when the draft has no heading-like first line.
const fallbackCoverTitle = "Ebook cover"

// coverTitle derives a working title from the first non-blank line of the
// draft, stripping leading markdown heading markers.
func coverTitle(draft string) string {
	for _, line := range strings.Split(draft, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(line, "# "))
		if title == "" {
			return fallbackCoverTitle
		}
		return title
	}
	return fallbackCoverTitle
}

// synthesizeCover builds the embeddable cover fragment. It is only attempted
// when the request carries an image credential; any failure yields an empty
// fragment and a log entry, never an error.
func (p *Pipeline) synthesizeCover(ctx context.Context, req model.GenerationRequest, draft string) string {
	if req.OpenAIAPIKey == "" {
		return ""
	}

	client, err := p.images(req.OpenAIAPIKey)
	if err != nil {
		slog.Warn("cover synthesis skipped", "error", err)
		return ""
	}

	prompt := buildCoverPrompt(coverTitle(draft), req.Personality)
	imageB64, err := client.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("cover synthesis failed", "error", err)
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		slog.Warn("cover image is not valid base64", "error", err)
		return ""
	}

	if err := p.writeScratchCover(raw); err != nil {
		slog.Warn("could not keep scratch copy of cover", "error", err)
		return ""
	}

	return fmt.Sprintf(
		"<img src=\"data:image/png;base64,%s\" alt=\"Ebook cover\" style=\"width: 100%%; page-break-after: always;\">\n",
		imageB64,
	)
}

func (p *Pipeline) writeScratchCover(raw []byte) error {
	if err := os.MkdirAll(p.cfg.ScratchDir, 0o755); err != nil {
		return err
	}
	name := "cover_" + uuid.New().String() + ".png"
	return os.WriteFile(filepath.Join(p.cfg.ScratchDir, name), raw, 0o644)
}
