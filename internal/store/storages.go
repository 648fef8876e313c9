package store

import "github.com/MKhiriev/go-plot-style/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	StyleRepository StyleRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		StyleRepository: NewStyleRepository(db, log),
	}
}
