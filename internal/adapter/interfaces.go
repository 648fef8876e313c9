// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote style server on behalf of stylectl.
//
// [StyleServer] hides the transport from callers. The HTTP implementation
// maps response statuses to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrBadStyle] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-plot-style/models"
)

// StyleServer is the remote style library.
type StyleServer interface {
	// Version returns the server build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)

	// ListStyles returns a summary of every stored style.
	ListStyles(ctx context.Context) ([]models.StyleSummary, error)

	// FetchStyle downloads the stored style named name.
	FetchStyle(ctx context.Context, name string) (models.Style, error)

	// PushStyle uploads body under name, creating or replacing it.
	PushStyle(ctx context.Context, name string, body []byte) (models.SaveStyleResponse, error)

	// DeleteStyle removes the style named name.
	DeleteStyle(ctx context.Context, name string) error

	// Validate asks the server to check body.
	Validate(ctx context.Context, body []byte) (models.ValidationReport, error)
}
