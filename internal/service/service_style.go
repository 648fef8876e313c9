package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/store"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/style/builtin"
	"github.com/MKhiriev/go-plot-style/internal/validators"
	"github.com/MKhiriev/go-plot-style/models"
)

const (
	refBuiltin = "builtin:"
	refDB      = "db:"
	refFile    = "file:"
)

type styleService struct {
	repo        store.StyleRepository
	validator   validators.Validator
	duplicates  style.DuplicatePolicy
	unknownKeys rcparams.UnknownKeyPolicy

	logger *logger.Logger
}

// NewStyleService builds a [StyleService]. repo may be nil.
func NewStyleService(repo store.StyleRepository, cfg config.Style, logger *logger.Logger) (StyleService, error) {
	duplicates, err := cfg.DuplicatePolicy()
	if err != nil {
		return nil, err
	}
	unknownKeys, err := cfg.UnknownKeyPolicy()
	if err != nil {
		return nil, err
	}

	return &styleService{
		repo:        repo,
		validator:   validators.NewStyleValidator(),
		duplicates:  duplicates,
		unknownKeys: unknownKeys,
		logger:      logger,
	}, nil
}

// ValidStyleName reports whether name can be used in the style library.
func ValidStyleName(name string) bool {
	return validators.ValidStyleName(name)
}

// validateName wraps validator failures in [ErrInvalidStyleName].
func (s *styleService) validateName(ctx context.Context, name string) error {
	if err := s.validator.Validate(ctx, name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStyleName, err)
	}
	return nil
}

func (s *styleService) Resolve(ctx context.Context, ref string) (*style.Document, error) {
	ref = strings.TrimSpace(ref)

	switch {
	case ref == "":
		return nil, ErrInvalidStyleRef

	case strings.HasPrefix(ref, refBuiltin):
		return builtin.Load(strings.TrimPrefix(ref, refBuiltin), style.WithDuplicates(s.duplicates))

	case strings.HasPrefix(ref, refDB):
		name := strings.TrimPrefix(ref, refDB)
		if s.repo == nil {
			return nil, ErrStyleLibraryUnavailable
		}
		if err := s.validateName(ctx, name); err != nil {
			return nil, err
		}
		stored, err := s.repo.GetStyle(ctx, name)
		if err != nil {
			return nil, err
		}
		return style.ParseString(stored.Body, style.WithSource(ref), style.WithDuplicates(s.duplicates))

	default:
		path := strings.TrimPrefix(ref, refFile)
		if path == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStyleRef, ref)
		}
		return style.Load(path, style.WithDuplicates(s.duplicates))
	}
}

func (s *styleService) Compose(ctx context.Context, refs ...string) (*style.Document, error) {
	if len(refs) == 0 {
		return nil, ErrNoStylesGiven
	}

	docs := make([]*style.Document, 0, len(refs))
	for _, ref := range refs {
		doc, err := s.Resolve(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("error resolving style %q: %w", ref, err)
		}
		docs = append(docs, doc)
	}
	return style.Merge(docs...), nil
}

func (s *styleService) Validate(ctx context.Context, body []byte) (models.ValidationReport, error) {
	doc, err := style.ParseBytes(body, style.WithDuplicates(s.duplicates))
	if err != nil {
		return models.ValidationReport{}, err
	}

	report, applyErr := rcparams.Apply(doc, rcparams.DefaultParams(),
		rcparams.WithUnknownKeys(rcparams.UnknownKeysIgnore),
	)

	result := models.ValidationReport{
		Valid:   applyErr == nil,
		Keys:    doc.Len(),
		Applied: report.Applied,
		Unknown: make([]models.UnknownKey, 0, len(report.Unknown)),
		Errors:  splitErrors(applyErr),
	}
	for _, u := range report.Unknown {
		result.Unknown = append(result.Unknown, models.UnknownKey{Key: u.Key, Line: u.Line})
	}
	if s.unknownKeys == rcparams.UnknownKeysError && len(report.Unknown) > 0 {
		result.Valid = false
	}

	logger.FromContext(ctx).Debug().
		Int("keys", result.Keys).
		Int("unknown", len(result.Unknown)).
		Bool("valid", result.Valid).
		Msg("style validated")

	return result, nil
}

func (s *styleService) Apply(ctx context.Context, refs ...string) (*rcparams.Params, rcparams.Report, error) {
	doc, err := s.Compose(ctx, refs...)
	if err != nil {
		return nil, rcparams.Report{}, err
	}

	params := rcparams.DefaultParams()
	report, err := params.ApplyDocument(doc,
		rcparams.WithUnknownKeys(s.unknownKeys),
		rcparams.WithLogger(logger.FromContext(ctx)),
	)
	if err != nil {
		return nil, report, err
	}
	return params, report, nil
}

func (s *styleService) SaveStyle(ctx context.Context, name string, body []byte) (models.Style, bool, error) {
	if s.repo == nil {
		return models.Style{}, false, ErrStyleLibraryUnavailable
	}
	err := s.validator.Validate(ctx, models.Style{Name: name, Body: string(body)})
	switch {
	case errors.Is(err, validators.ErrInvalidStyleName):
		return models.Style{}, false, fmt.Errorf("%w: %w", ErrInvalidStyleName, err)
	case err != nil:
		return models.Style{}, false, err
	}

	doc, err := style.ParseBytes(body, style.WithDuplicates(s.duplicates))
	if err != nil {
		return models.Style{}, false, err
	}
	normalized := models.Style{Name: name, Body: doc.String()}

	saved, err := s.repo.SaveStyle(ctx, normalized)
	if err == nil {
		return saved, true, nil
	}
	if !errors.Is(err, store.ErrStyleAlreadyExists) {
		return models.Style{}, false, err
	}

	updated, err := s.repo.UpdateStyle(ctx, normalized)
	if err != nil {
		return models.Style{}, false, err
	}
	return updated, false, nil
}

func (s *styleService) GetStyle(ctx context.Context, name string) (models.Style, error) {
	if s.repo == nil {
		return models.Style{}, ErrStyleLibraryUnavailable
	}
	if err := s.validateName(ctx, name); err != nil {
		return models.Style{}, err
	}
	return s.repo.GetStyle(ctx, name)
}

func (s *styleService) ListStyles(ctx context.Context) ([]models.StyleSummary, error) {
	if s.repo == nil {
		return nil, ErrStyleLibraryUnavailable
	}
	return s.repo.ListStyles(ctx)
}

func (s *styleService) DeleteStyle(ctx context.Context, name string) error {
	if s.repo == nil {
		return ErrStyleLibraryUnavailable
	}
	if err := s.validateName(ctx, name); err != nil {
		return err
	}
	return s.repo.DeleteStyle(ctx, name)
}

// splitErrors flattens a joined error into its messages.
func splitErrors(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
