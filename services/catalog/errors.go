package catalog

import "fmt"

// ValidationError signals a missing or malformed required request field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that an id resolved to no record.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

// UpstreamError wraps a primary datastore failure that was not eligible for
// fallback substitution.
type UpstreamError struct {
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("primary datastore failure: %v", e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}
