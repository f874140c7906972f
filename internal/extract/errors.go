package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when a document's text is blank; the service
// is never called for such documents.
var ErrEmptyContent = errors.New("document has no extractable content")

// ServiceError is a transport, auth or API-level failure from the extraction
// backend.
type ServiceError struct {
	Model string
	Err   error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("extraction service (%s): %v", e.Model, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// SchemaError reports a response body that does not conform to the required
// record array shape.
type SchemaError struct {
	Reason string
	Raw    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response violates record schema: %s (raw: %s)", e.Reason, truncate(e.Raw, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
