package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// A4 paper dimensions in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 1.0
)

// ChromeRenderer prints styled HTML to paginated PDF through a headless
// Chrome instance. One browser serves all requests; each render uses its
// own page.
type ChromeRenderer struct {
	browser *rod.Browser
}

// NewChromeRenderer launches the browser. The rod launcher downloads a
// managed Chromium on first run when no system browser is found.
func NewChromeRenderer() (*ChromeRenderer, error) {
	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect chrome: %w", err)
	}
	return &ChromeRenderer{browser: browser}, nil
}

// Close shuts the browser down.
func (r *ChromeRenderer) Close() error {
	return r.browser.Close()
}

// Render converts markdown plus an optional cover fragment into a PDF at
// outputPath, creating parent directories and overwriting any prior file.
func (r *ChromeRenderer) Render(ctx context.Context, markdown, coverHTML, outputPath string) error {
	body, err := ToHTML(markdown)
	if err != nil {
		return err
	}
	doc := BuildDocument(coverHTML, body)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetDocumentContent(doc); err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	// Give embedded base64 images a moment to decode before printing.
	if err := page.WaitStable(500 * time.Millisecond); err != nil {
		return fmt.Errorf("wait for document: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        inches(paperWidthInches),
		PaperHeight:       inches(paperHeightInches),
		MarginTop:         inches(marginInches),
		MarginBottom:      inches(marginInches),
		MarginLeft:        inches(marginInches),
		MarginRight:       inches(marginInches),
	})
	if err != nil {
		return fmt.Errorf("print pdf: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, stream); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func inches(v float64) *float64 { return &v }
