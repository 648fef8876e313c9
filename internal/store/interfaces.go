package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-plot-style/models"
)

// StyleRepository persists named style documents.
type StyleRepository interface {
	// SaveStyle inserts a new style; the name must be unused.
	SaveStyle(ctx context.Context, style models.Style) (models.Style, error)
	// UpdateStyle replaces the body of an existing style.
	UpdateStyle(ctx context.Context, style models.Style) (models.Style, error)
	// GetStyle returns the style with the given name.
	GetStyle(ctx context.Context, name string) (models.Style, error)
	// ListStyles returns every style ordered by name.
	ListStyles(ctx context.Context) ([]models.StyleSummary, error)
	// DeleteStyle removes the style with the given name.
	DeleteStyle(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
