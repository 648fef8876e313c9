package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/models"
)

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// StyleService loads, validates, applies and stores style documents.
//
// A style ref names where a document comes from:
//   - "builtin:NAME" for an embedded style,
//   - "db:NAME" for a style in the library,
//   - "file:PATH" or a bare PATH for a file on disk.
type StyleService interface {
	// Resolve loads the document named by ref.
	Resolve(ctx context.Context, ref string) (*style.Document, error)
	// Compose resolves refs in order and merges them, later refs winning.
	Compose(ctx context.Context, refs ...string) (*style.Document, error)
	// Validate parses body and applies it to the renderer defaults. A
	// *style.ParseError is returned as the error; coercion failures and
	// unknown keys are reported in the result.
	Validate(ctx context.Context, body []byte) (models.ValidationReport, error)
	// Apply composes refs and applies the result to the renderer defaults.
	Apply(ctx context.Context, refs ...string) (*rcparams.Params, rcparams.Report, error)

	// SaveStyle parses body and stores its normalized form under name. The
	// bool reports whether the style was created rather than replaced.
	SaveStyle(ctx context.Context, name string, body []byte) (models.Style, bool, error)
	GetStyle(ctx context.Context, name string) (models.Style, error)
	ListStyles(ctx context.Context) ([]models.StyleSummary, error)
	DeleteStyle(ctx context.Context, name string) error
}
