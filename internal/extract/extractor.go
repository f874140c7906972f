package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dgallion1/qaextract/internal/prompt"
)

// Extractor turns rendered extraction requests into typed records via a
// backend. One Extract call is one synchronous round trip; there is no retry
// policy.
type Extractor struct {
	backend Backend
	model   ModelConfig
}

// New creates an extractor for the given model selector. Unknown selectors
// fall back to the default model.
func New(backend Backend, selector string) *Extractor {
	return &Extractor{
		backend: backend,
		model:   ResolveModel(selector),
	}
}

// Model returns the resolved backend configuration.
func (e *Extractor) Model() ModelConfig { return e.model }

// Extract calls the service with the rendered request and parses the response
// into records. IDs are left unassigned. Blank document content short-circuits
// with ErrEmptyContent before any call is made. Transport failures surface as
// *ServiceError, malformed response bodies as *SchemaError.
func (e *Extractor) Extract(ctx context.Context, req prompt.Request) ([]Record, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	body, err := e.backend.Generate(ctx, req.System, req.User, e.model)
	if err != nil {
		return nil, &ServiceError{Model: e.model.ID, Err: err}
	}

	if err := validateShape(body); err != nil {
		return nil, &SchemaError{Reason: err.Error(), Raw: string(body)}
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &SchemaError{Reason: err.Error(), Raw: string(body)}
	}
	return records, nil
}
