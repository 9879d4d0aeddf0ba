package ports

import (
	"context"

	"postboard/internal/domain/model"
)

// PublicationProvider retrieves publications from the posts API.
//
// GetPublications reports failures to the caller. FetchPublications logs them
// and degrades to an empty result, so callers cannot tell an empty API
// response from a failed call.
type PublicationProvider interface {
	GetPublications(ctx context.Context) ([]model.Publication, error)
	FetchPublications(ctx context.Context) []model.Publication
}
