// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
)

// validate checks that the merged server configuration is usable before
// startup. All failing groups are reported together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Style.validate(),
		cfg.Storage.DB.validate(),
		cfg.Server.validate(),
	)
}

func (cfg *ClientConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Style.validate(),
		cfg.Adapter.validate(),
	)
}

func (a App) validate() error {
	if a.LogLevel == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, a.LogLevel)
	}
	return nil
}

func (s Style) validate() error {
	if _, err := s.UnknownKeyPolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStyleConfigs, err)
	}
	if _, err := s.DuplicatePolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStyleConfigs, err)
	}
	if s.WatchDebounce < 0 {
		return fmt.Errorf("%w: negative watch debounce", ErrInvalidStyleConfigs)
	}
	if s.Watch && len(s.Paths) == 0 {
		return fmt.Errorf("%w: watch requires at least one style path", ErrInvalidStyleConfigs)
	}
	return nil
}

func (db DB) validate() error {
	switch db.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" || s.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

// UnknownKeyPolicy parses the configured unknown key policy.
func (s Style) UnknownKeyPolicy() (rcparams.UnknownKeyPolicy, error) {
	return rcparams.ParseUnknownKeyPolicy(s.UnknownKeys)
}

// DuplicatePolicy parses the configured duplicate key policy.
func (s Style) DuplicatePolicy() (style.DuplicatePolicy, error) {
	return style.ParseDuplicatePolicy(s.Duplicates)
}
