// package services defines interface CatalogService for talking to the metadata backend
package services

import (
	"context"

	"github.com/jadipas/freddie/internal/models"
)

// CatalogService is the boundary to whatever produces and persists the song
// catalog. The production implementation is the HTTP metadata backend; tests
// substitute mocks.
type CatalogService interface {
	// Load fetches the current catalog. A transport failure or malformed
	// payload maps to shared.ErrCatalogUnavailable; the caller routes that
	// into the ingestion fallback.
	Load(ctx context.Context) (models.Catalog, error)

	// Upload sends a replacement catalog file for durable persistence so
	// future Load calls succeed. Failures map to shared.ErrUploadRejected.
	Upload(ctx context.Context, filename string, data []byte) error

	// Health reports whether the backend is reachable and has a catalog.
	Health(ctx context.Context) (bool, error)

	// Name returns the backend's display name.
	Name() string
}
