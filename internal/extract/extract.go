// Package extract pulls plain text out of uploaded reference documents.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"ebookforge/internal/model"
)

// FromUploads extracts text fragments from the given uploads in order.
// PDF files contribute one fragment per page with extractable text; plain
// text files contribute a single fragment. Unsupported extensions are
// skipped, and no single file failure aborts extraction of the rest.
func FromUploads(uploads []model.Upload) []string {
	var fragments []string
	for _, u := range uploads {
		switch strings.ToLower(filepath.Ext(u.Filename)) {
		case ".pdf":
			pages, err := pdfPages(u.Data)
			if err != nil {
				slog.Warn("skipping unreadable pdf upload", "filename", u.Filename, "error", err)
				continue
			}
			fragments = append(fragments, pages...)
		case ".txt":
			fragments = append(fragments, strings.ToValidUTF8(string(u.Data), "�"))
		}
	}
	return fragments
}

// Join concatenates fragments into the single reference blob handed to the
// prompt composer.
func Join(fragments []string) string {
	return strings.TrimSpace(strings.Join(fragments, "\n"))
}

// pdfPages returns the text of each page that yields any. Pages without
// extractable text are skipped, not errored.
func pdfPages(data []byte) (pages []string, err error) {
	// The pdf package panics on some malformed files; treat that the same
	// as a parse error so one bad upload cannot take down the request.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdf reader: %w", err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("skipping pdf page without extractable text", "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
