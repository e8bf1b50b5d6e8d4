package engine

import (
	"strings"
	"testing"
)

func TestBuildAuthorPrompt(t *testing.T) {
	prompt := buildAuthorPrompt("A short story about a fox.", "whimsical", "Reference A\nReference B")

	for _, want := range []string{
		"A short story about a fox.",
		"whimsical",
		"Reference A\nReference B",
		"table of contents",
		"page break",
		"storytelling template",
		"Markdown",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("authoring prompt missing %q", want)
		}
	}
}

func TestBuildAuthorPrompt_StorytellingBeats(t *testing.T) {
	prompt := buildAuthorPrompt("text", "neutral", "refs")

	for _, beat := range []string{
		"Character:", "Goal:", "Conflict:", "Journey:",
		"Tension:", "Climax:", "Resolution:", "Transformation:",
	} {
		if !strings.Contains(prompt, beat) {
			t.Errorf("authoring prompt missing storytelling beat %q", beat)
		}
	}
}

func TestBuildAuthorPrompt_NoReferencesMarker(t *testing.T) {
	for _, refs := range []string{"", "   ", "\n\t"} {
		prompt := buildAuthorPrompt("text", "neutral", refs)
		if !strings.Contains(prompt, "Additional references:\n"+noReferences) {
			t.Errorf("authoring prompt with refs=%q missing the %q marker", refs, noReferences)
		}
	}
}

func TestBuildEditPrompt(t *testing.T) {
	draft := "# Title\n\nSome draft text."
	prompt := buildEditPrompt(draft, "formal")

	if !strings.Contains(prompt, "senior editor") {
		t.Error("editorial prompt missing the editor persona")
	}
	if !strings.Contains(prompt, "formal") {
		t.Error("editorial prompt missing the personality")
	}
	if !strings.Contains(prompt, draft) {
		t.Error("editorial prompt missing the draft")
	}
	if !strings.Contains(prompt, "only the final Markdown") {
		t.Error("editorial prompt missing the output constraint")
	}
}

func TestBuildCoverPrompt(t *testing.T) {
	prompt := buildCoverPrompt("The Quiet Orchard", "whimsical")
	if !strings.Contains(prompt, "The Quiet Orchard") || !strings.Contains(prompt, "whimsical") {
		t.Errorf("cover prompt = %q, want title and personality included", prompt)
	}
}
