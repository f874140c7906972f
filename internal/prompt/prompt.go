package prompt

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// SystemInstruction is the fixed instruction sent with every extraction call.
const SystemInstruction = `You are an expert at extracting interview questions and prepared answers from documents.

Extract every question/answer pair present in the document. For each pair:
- "category": classify the question as one of "Personal", "Ethics", "Leadership", "Teamwork", "Healthcare", "Technical" or "Other"
- "question": the interview question, cleaned of numbering or markup
- "answer": the prepared answer, as EXACT verbatim text from the document — do not paraphrase, summarize or correct it

Rules:
- Only extract pairs where both a question and an answer are present
- Keep the pairs in the order they appear in the document
- Return an empty array [] if the document contains no question/answer pairs

Respond with ONLY the JSON array, no other text.`

// DefaultUserTemplate wraps the document content for the user message.
// The {{.Content}} placeholder is replaced with the raw document text.
const DefaultUserTemplate = `Extract all interview question/answer pairs from the following document.

---
{{.Content}}
---`

// ErrTemplate reports a malformed user template or a missing content placeholder.
var ErrTemplate = errors.New("invalid prompt template")

// Request is a fully rendered extraction request: system instructions plus
// the user message carrying the document text.
type Request struct {
	System  string
	User    string
	Content string
}

// Renderer builds extraction requests by substituting document text into a
// user-message template.
type Renderer struct {
	system string
	user   string
}

// NewRenderer returns a renderer using the built-in instruction and template.
func NewRenderer() *Renderer {
	return &Renderer{system: SystemInstruction, user: DefaultUserTemplate}
}

// NewRendererWith returns a renderer using custom instruction and template text.
func NewRendererWith(system, userTemplate string) *Renderer {
	return &Renderer{system: system, user: userTemplate}
}

// contentMarker is rendered through a template to verify it actually
// references .Content; NUL bytes keep it from colliding with template text.
const contentMarker = "\x00content\x00"

// Render produces the request payload for one document's raw text.
func (r *Renderer) Render(content string) (Request, error) {
	tmpl, err := template.New("user").Parse(r.user)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	var check strings.Builder
	if err := tmpl.Execute(&check, struct{ Content string }{Content: contentMarker}); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	if !strings.Contains(check.String(), contentMarker) {
		return Request{}, fmt.Errorf("%w: user template does not reference .Content", ErrTemplate)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, struct{ Content string }{Content: content}); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	return Request{
		System:  r.system,
		User:    sb.String(),
		Content: content,
	}, nil
}
