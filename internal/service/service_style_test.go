package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/mock"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/store"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/validators"
	"github.com/MKhiriev/go-plot-style/models"
)

func newTestStyleService(t *testing.T, repo store.StyleRepository, cfg config.Style) StyleService {
	t.Helper()
	svc, err := NewStyleService(repo, cfg, logger.Nop())
	require.NoError(t, err)
	return svc
}

func writeStyleFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.mplstyle")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewStyleService_InvalidPolicies(t *testing.T) {
	_, err := NewStyleService(nil, config.Style{UnknownKeys: "loud"}, logger.Nop())
	assert.ErrorIs(t, err, rcparams.ErrUnknownKeyPolicy)

	_, err = NewStyleService(nil, config.Style{Duplicates: "first-wins"}, logger.Nop())
	assert.ErrorIs(t, err, style.ErrUnknownDuplicatePolicy)
}

func TestValidStyleName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "latex", want: true},
		{name: "with dots and dashes", input: "paper-2.col_1", want: true},
		{name: "empty", input: "", want: false},
		{name: "leading dot", input: ".hidden", want: false},
		{name: "slash", input: "a/b", want: false},
		{name: "space", input: "my style", want: false},
		{name: "too long", input: strings.Repeat("a", 256), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStyleName(tt.input))
		})
	}
}

func TestStyleService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		doc, err := svc.Resolve(ctx, "builtin:latex")
		require.NoError(t, err)
		assert.Equal(t, "False", doc.Get("legend.frameon"))
		assert.Equal(t, 17, doc.Len())
	})

	t.Run("unknown builtin", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		_, err := svc.Resolve(ctx, "builtin:seaborn")
		assert.Error(t, err)
	})

	t.Run("file prefix and bare path", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		path := writeStyleFile(t, "lines.linewidth: 2\n")

		for _, ref := range []string{"file:" + path, path} {
			doc, err := svc.Resolve(ctx, ref)
			require.NoError(t, err, ref)
			assert.Equal(t, "2", doc.Get("lines.linewidth"))
		}
	})

	t.Run("file parse error keeps line", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		path := writeStyleFile(t, "lines.linewidth: 2\nbroken line\n")

		_, err := svc.Resolve(ctx, path)
		var parseErr *style.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
		assert.Equal(t, path, parseErr.Source)
	})

	t.Run("db", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockStyleRepository(ctrl)
		repo.EXPECT().GetStyle(gomock.Any(), "paper").
			Return(models.Style{Name: "paper", Body: "font.size: 9\n"}, nil)

		svc := newTestStyleService(t, repo, config.Style{})
		doc, err := svc.Resolve(ctx, "db:paper")
		require.NoError(t, err)
		assert.Equal(t, "9", doc.Get("font.size"))

		s, ok := doc.Setting("font.size")
		require.True(t, ok)
		assert.Equal(t, 1, s.Line)
	})

	t.Run("db not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockStyleRepository(ctrl)
		repo.EXPECT().GetStyle(gomock.Any(), "missing").Return(models.Style{}, store.ErrStyleNotFound)

		svc := newTestStyleService(t, repo, config.Style{})
		_, err := svc.Resolve(ctx, "db:missing")
		assert.ErrorIs(t, err, store.ErrStyleNotFound)
	})

	t.Run("db without library", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		_, err := svc.Resolve(ctx, "db:paper")
		assert.ErrorIs(t, err, ErrStyleLibraryUnavailable)
	})

	t.Run("db bad name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestStyleService(t, mock.NewMockStyleRepository(ctrl), config.Style{})
		_, err := svc.Resolve(ctx, "db:../etc")
		assert.ErrorIs(t, err, ErrInvalidStyleName)
	})

	t.Run("empty refs", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		_, err := svc.Resolve(ctx, "  ")
		assert.ErrorIs(t, err, ErrInvalidStyleRef)

		_, err = svc.Resolve(ctx, "file:")
		assert.ErrorIs(t, err, ErrInvalidStyleRef)
	})

	t.Run("reject duplicates", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{Duplicates: "reject"})
		path := writeStyleFile(t, "font.size: 9\nfont.size: 10\n")

		_, err := svc.Resolve(ctx, path)
		assert.ErrorIs(t, err, style.ErrDuplicateKey)
	})
}

func TestStyleService_Compose(t *testing.T) {
	ctx := context.Background()
	svc := newTestStyleService(t, nil, config.Style{})
	override := writeStyleFile(t, "legend.frameon: True\nfigure.dpi: 200\n")

	doc, err := svc.Compose(ctx, "builtin:latex", override)
	require.NoError(t, err)

	assert.Equal(t, "True", doc.Get("legend.frameon"))
	assert.Equal(t, "200", doc.Get("figure.dpi"))
	assert.Equal(t, "cmr10", doc.Get("font.serif"))
	assert.Equal(t, 18, doc.Len())

	_, err = svc.Compose(ctx)
	assert.ErrorIs(t, err, ErrNoStylesGiven)

	_, err = svc.Compose(ctx, "builtin:latex", "builtin:nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"builtin:nope"`)
}

func TestStyleService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid with unknown key", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		report, err := svc.Validate(ctx, []byte("legend.frameon: False\nfoo.bar: 1\n"))
		require.NoError(t, err)

		assert.True(t, report.Valid)
		assert.Equal(t, 2, report.Keys)
		assert.Equal(t, []string{"legend.frameon"}, report.Applied)
		assert.Equal(t, []models.UnknownKey{{Key: "foo.bar", Line: 2}}, report.Unknown)
		assert.Empty(t, report.Errors)
	})

	t.Run("unknown keys fail under error policy", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{UnknownKeys: "error"})
		report, err := svc.Validate(ctx, []byte("foo.bar: 1\n"))
		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Len(t, report.Unknown, 1)
	})

	t.Run("coercion errors are reported", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		report, err := svc.Validate(ctx, []byte("lines.linewidth: thick\nlegend.frameon: maybe\nfont.size: 10\n"))
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Equal(t, []string{"font.size"}, report.Applied)
		require.Len(t, report.Errors, 2)
		assert.Contains(t, report.Errors[0], "line 1")
		assert.Contains(t, report.Errors[1], "line 2")
	})

	t.Run("parse error", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		_, err := svc.Validate(ctx, []byte("# ok\nno separator\n"))

		var parseErr *style.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
		assert.ErrorIs(t, err, style.ErrMissingSeparator)
	})
}

func TestStyleService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("latex", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		params, report, err := svc.Apply(ctx, "builtin:latex")
		require.NoError(t, err)

		assert.False(t, params.Legend.FrameOn)
		assert.Equal(t, [2]int{-4, 4}, params.Axes.FormatterLimits)
		assert.Equal(t, []string{"serif"}, params.Font.Family)
		assert.Len(t, report.Applied, 17)
		assert.Empty(t, report.Unknown)
	})

	t.Run("unknown key under error policy", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{UnknownKeys: "error"})
		path := writeStyleFile(t, "foo.bar: 1\n")

		params, report, err := svc.Apply(ctx, "builtin:latex", path)
		assert.Nil(t, params)
		assert.ErrorIs(t, err, rcparams.ErrUnknownKey)
		assert.Equal(t, []rcparams.UnknownKeyWarning{{Key: "foo.bar", Line: 1}}, report.Unknown)
	})

	t.Run("coercion error", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		path := writeStyleFile(t, "lines.linewidth: -1\n")

		_, _, err := svc.Apply(ctx, path)
		var coercionErr *rcparams.TypeCoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, "lines.linewidth", coercionErr.Key)
	})
}

func TestStyleService_SaveStyle(t *testing.T) {
	ctx := context.Background()
	body := []byte("# paper\nfont.size :   9   # small\n")

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockStyleRepository(ctrl)
		repo.EXPECT().SaveStyle(gomock.Any(), models.Style{Name: "paper", Body: "font.size: 9\n"}).
			DoAndReturn(func(_ context.Context, s models.Style) (models.Style, error) {
				s.Checksum = models.Checksum(s.Body)
				return s, nil
			})

		svc := newTestStyleService(t, repo, config.Style{})
		saved, created, err := svc.SaveStyle(ctx, "paper", body)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.Checksum("font.size: 9\n"), saved.Checksum)
	})

	t.Run("replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockStyleRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().SaveStyle(gomock.Any(), gomock.Any()).Return(models.Style{}, store.ErrStyleAlreadyExists),
			repo.EXPECT().UpdateStyle(gomock.Any(), models.Style{Name: "paper", Body: "font.size: 9\n"}).
				Return(models.Style{Name: "paper", Body: "font.size: 9\n"}, nil),
		)

		svc := newTestStyleService(t, repo, config.Style{})
		saved, created, err := svc.SaveStyle(ctx, "paper", body)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "paper", saved.Name)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockStyleRepository(ctrl)
		dbErr := errors.New("disk full")
		repo.EXPECT().SaveStyle(gomock.Any(), gomock.Any()).Return(models.Style{}, dbErr)

		svc := newTestStyleService(t, repo, config.Style{})
		_, _, err := svc.SaveStyle(ctx, "paper", body)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("parse error is not stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestStyleService(t, mock.NewMockStyleRepository(ctrl), config.Style{})

		_, _, err := svc.SaveStyle(ctx, "paper", []byte("font.size 9\n"))
		assert.ErrorIs(t, err, style.ErrMissingSeparator)
	})

	t.Run("invalid name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestStyleService(t, mock.NewMockStyleRepository(ctrl), config.Style{})

		_, _, err := svc.SaveStyle(ctx, "a b", body)
		assert.ErrorIs(t, err, ErrInvalidStyleName)
		assert.ErrorIs(t, err, validators.ErrInvalidStyleName)
	})

	t.Run("body too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestStyleService(t, mock.NewMockStyleRepository(ctrl), config.Style{})

		large := []byte(strings.Repeat("#", validators.MaxStyleBodySize+1))
		_, _, err := svc.SaveStyle(ctx, "paper", large)
		assert.ErrorIs(t, err, validators.ErrBodyTooLarge)
	})

	t.Run("no library", func(t *testing.T) {
		svc := newTestStyleService(t, nil, config.Style{})
		_, _, err := svc.SaveStyle(ctx, "paper", body)
		assert.ErrorIs(t, err, ErrStyleLibraryUnavailable)
	})
}

func TestStyleService_LibraryPassthrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStyleRepository(ctrl)
	svc := newTestStyleService(t, repo, config.Style{})

	summaries := []models.StyleSummary{{Name: "a"}, {Name: "b"}}
	repo.EXPECT().ListStyles(gomock.Any()).Return(summaries, nil)
	repo.EXPECT().GetStyle(gomock.Any(), "a").Return(models.Style{Name: "a"}, nil)
	repo.EXPECT().DeleteStyle(gomock.Any(), "b").Return(store.ErrStyleNotFound)

	got, err := svc.ListStyles(ctx)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)

	s, err := svc.GetStyle(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name)

	assert.ErrorIs(t, svc.DeleteStyle(ctx, "b"), store.ErrStyleNotFound)
	assert.ErrorIs(t, svc.DeleteStyle(ctx, "b/c"), ErrInvalidStyleName)

	_, err = svc.GetStyle(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidStyleName)
}

func TestSplitErrors(t *testing.T) {
	assert.Nil(t, splitErrors(nil))
	assert.Equal(t, []string{"one"}, splitErrors(errors.New("one")))
	assert.Equal(t, []string{"one", "two"}, splitErrors(errors.Join(errors.New("one"), errors.New("two"))))
}

func TestStartupRefs(t *testing.T) {
	assert.Empty(t, StartupRefs(config.Style{}))
	assert.Equal(t,
		[]string{"builtin:latex", "file:a.mplstyle", "file:b.mplstyle"},
		StartupRefs(config.Style{Builtin: "latex", Paths: []string{"a.mplstyle", "b.mplstyle"}}),
	)
}

func TestNewActiveStyle(t *testing.T) {
	ctx := context.Background()
	svc := newTestStyleService(t, nil, config.Style{})

	holder, err := NewActiveStyle(ctx, svc, config.Style{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, holder)

	override := writeStyleFile(t, "legend.frameon: True\n")
	holder, err = NewActiveStyle(ctx, svc, config.Style{Builtin: "latex", Paths: []string{override}}, logger.Nop())
	require.NoError(t, err)

	state := holder.Get()
	assert.True(t, state.Params.Legend.FrameOn)
	assert.Equal(t, [2]int{-4, 4}, state.Params.Axes.FormatterLimits)

	_, err = NewActiveStyle(ctx, svc, config.Style{Builtin: "nope"}, logger.Nop())
	assert.ErrorContains(t, err, "error loading startup styles")
}
