package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/store"
	"github.com/MKhiriev/go-plot-style/internal/watcher"
	"github.com/MKhiriev/go-plot-style/models"
)

type Services struct {
	AppInfoService AppInfoService
	StyleService   StyleService

	// ActiveStyle holds the startup composition; nil when none is
	// configured.
	ActiveStyle *watcher.Holder
}

// NewServices wires the services over storages. storages may be nil when no
// database is configured; db: refs then fail with
// [ErrStyleLibraryUnavailable].
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var repo store.StyleRepository
	if storages != nil {
		repo = storages.StyleRepository
	}

	styles, err := NewStyleService(repo, cfg.Style, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating style service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		StyleService:   styles,
	}, nil
}

// NewActiveStyle loads the startup composition of cfg: the builtin style
// first, then the files in order. It returns nil without startup styles.
func NewActiveStyle(ctx context.Context, styles StyleService, cfg config.Style, logger *logger.Logger) (*watcher.Holder, error) {
	refs := StartupRefs(cfg)
	if len(refs) == 0 {
		return nil, nil
	}

	unknownKeys, err := cfg.UnknownKeyPolicy()
	if err != nil {
		return nil, err
	}

	holder, err := watcher.NewHolder(ctx, styles, watcher.Config{
		Refs:        refs,
		Files:       cfg.Paths,
		UnknownKeys: unknownKeys,
		Debounce:    cfg.WatchDebounce,
	}, logger.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("error loading startup styles: %w", err)
	}
	return holder, nil
}

// StartupRefs lists the refs named by cfg in application order.
func StartupRefs(cfg config.Style) []string {
	refs := make([]string, 0, len(cfg.Paths)+1)
	if cfg.Builtin != "" {
		refs = append(refs, refBuiltin+cfg.Builtin)
	}
	for _, p := range cfg.Paths {
		refs = append(refs, refFile+p)
	}
	return refs
}
