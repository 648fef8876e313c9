package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Style is a named style document kept in the style library.
type Style struct {
	// ID is assigned when the style is first saved.
	ID uuid.UUID `json:"id"`

	// Name is unique within the library.
	Name string `json:"name"`

	// Body is the normalized document text, one "key: value" per line.
	Body string `json:"body"`

	// Checksum is the hex SHA-256 of Body.
	Checksum string `json:"checksum"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StyleSummary is a library listing entry without the body.
type StyleSummary struct {
	Name      string    `json:"name"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Checksum returns the hex SHA-256 of body.
func Checksum(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
