// Package render converts final markdown into a styled, paginated PDF.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// ToHTML converts markdown to an HTML body fragment.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildDocument wraps the cover fragment and converted body in the fixed
// document shell with the embedded stylesheet. The cover always precedes
// the body so it renders as the first page.
func BuildDocument(coverHTML, bodyHTML string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>
%s
</style>
</head>
<body>
%s
%s
</body>
</html>`, styleSheet, coverHTML, bodyHTML)
}
