package catalogRepo

import (
	"context"

	"tripdesk/models"
)

// Dataset sources.
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// Dataset is what a fetch yields: raw records plus where they came from. A
// non-empty Warning means the primary schema was unavailable and the
// fallback was substituted; the request still succeeds.
type Dataset struct {
	Items   []models.RawRecord
	Source  string
	Warning string
}

// PrimarySource fetches raw catalog records from the remote relational
// datastore.
type PrimarySource interface {
	// Configured reports whether the primary source can be attempted at all.
	Configured() bool
	FetchGuides(ctx context.Context) ([]models.RawRecord, error)
	FetchTransport(ctx context.Context) ([]models.RawRecord, error)
}
