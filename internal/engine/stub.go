package engine

import (
	"context"
	"strings"
)

const stubDraftMarkdown = `# The Quiet Orchard

## Summary

A short tale of patience and seasons.

## Chapter 1: Roots

The orchard had been planted long before anyone could remember.

## Chapter 2: Harvest

When autumn came, the branches finally gave back what the years had taken.`

const stubEditedMarkdown = `# The Quiet Orchard

## Summary

A polished tale of patience and seasons.

## Chapter 1: Roots

The orchard had been planted long before anyone could remember it bare.

## Chapter 2: Harvest

When autumn came, the branches gave back what the years had taken.`

// stubPNGBase64 is a 1x1 transparent PNG.
const stubPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// StubModelClient returns canned markdown (for development/testing). The
// editorial prompt is recognized by its persona line so a single stub can
// serve both passes.
type StubModelClient struct {
	Err error
	// DraftResponse and EditResponse override the canned outputs when set.
	DraftResponse string
	EditResponse  string
	// Prompts records every prompt received, in call order.
	Prompts []string
}

func (m *StubModelClient) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if strings.Contains(prompt, "senior editor") {
		if m.EditResponse != "" {
			return m.EditResponse, nil
		}
		return stubEditedMarkdown, nil
	}
	if m.DraftResponse != "" {
		return m.DraftResponse, nil
	}
	return stubDraftMarkdown, nil
}

// StubImageClient returns a tiny valid PNG payload (for development/testing).
type StubImageClient struct {
	Err     error
	Prompts []string
}

func (m *StubImageClient) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return stubPNGBase64, nil
}
