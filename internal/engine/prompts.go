package engine

import (
	"fmt"
	"strings"
)

// noReferences is substituted when no reference text was extracted, so the
// model is not misled by a blank section.
const noReferences = "None"

func buildAuthorPrompt(primaryText, personality, references string) string {
	if strings.TrimSpace(references) == "" {
		references = noReferences
	}
	return fmt.Sprintf(`Act as a professional ebook writer with a %s personality.
Use EXCLUSIVELY the primary content and the references supplied below to produce a complete, highly professional manuscript.

Primary content:
%s

Additional references:
%s

Mandatory guidelines:
- Build a cohesive narrative with an introduction, well-structured chapters, subheadings where they make sense, and a strong conclusion.
- Do not introduce outside information, opinions, or stories that are not in the supplied material.
- Write a concise, engaging summary for the start of the ebook.
- Build the ebook's table of contents, listing chapter titles and their respective pages.
- Improve the overall structure, reorganizing sections where needed for better logical flow.
- Remove redundancies and irrelevant information.
- Break the content up so that every important point is covered in full.
- Insert a page break at every chapter change or major section change; every new chapter starts on a new page.
- Where applicable, use the following storytelling template to shape the narrative (it is only a guide, and not every story needs every element):
  - Character: the "who". The protagonist the audience identifies with.
  - Goal: the "what". What the main character wants to achieve.
  - Conflict: the "why not". The obstacle, villain, or problem keeping the character from the goal.
  - Journey: the "how". The sequence of events and challenges that test the character.
  - Tension: the build-up of expectation and risk that keeps the audience engaged.
  - Climax: the decisive turning point; the final confrontation.
  - Resolution: the outcome of the climax and the closing of the story.
  - Transformation: the internal change the character undergoes; the lesson learned.
- Do not create credits, author, or acknowledgement sections, or any message about automated generation.
- Do not include lines dedicated to page numbers or internal notes.
- Do not comment on the primary content, and do not open with remarks of any kind before the content itself.
- Use pure, direct Markdown, with no extra commentary or explanatory text.
- Adopt a polished, convincing, corporate tone.`, personality, primaryText, references)
}

func buildEditPrompt(draft, personality string) string {
	return fmt.Sprintf(`You are now a senior editor of professional publications with a %s personality.
Revise the draft below and make sure it stays faithful to the original material without adding outside facts.

Received draft:
%s

Editing guidelines:
- Raise the clarity, flow, and coherence while preserving the original meaning.
- Fix grammar, spelling, punctuation, and style errors.
- Adjust the Markdown to keep headings consistent, paragraphs balanced, and lists clear where appropriate.
- Remove any reference to authors, sources, tools, or generation processes.
- Deliver only the final Markdown, ready for layout.`, personality, draft)
}

func buildCoverPrompt(title, personality string) string {
	return fmt.Sprintf("A professional, aesthetic ebook cover about %s, aligned with a %s personality.", title, personality)
}
