package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-plot-style/internal/adapter"
	"github.com/MKhiriev/go-plot-style/internal/client"
	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/tui"
	"github.com/MKhiriev/go-plot-style/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewConsoleLogger("stylectl", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return exitFailure
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return exitFailure
	}

	styles, err := service.NewStyleService(nil, cfg.Style, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return exitFailure
	}

	duplicates, err := cfg.Style.DuplicatePolicy()
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return exitFailure
	}

	remote, err := adapter.NewHTTPStyleServer(cfg.Adapter, log)
	if err != nil {
		log.Warn().Err(err).Msg("style server adapter disabled")
	}

	app := client.NewApp(styles, remote, build, log, client.WithDuplicates(duplicates))
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		switch {
		case errors.Is(err, client.ErrUsage):
			fmt.Fprintln(os.Stderr, tui.RenderError(err))
			return exitUsage
		case errors.Is(err, client.ErrCheckFailed):
			return exitFailure
		default:
			fmt.Fprintln(os.Stderr, tui.RenderError(err))
			return exitFailure
		}
	}
	return 0
}
