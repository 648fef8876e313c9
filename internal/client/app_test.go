package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-plot-style/internal/adapter"
	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/mock"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/models"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

type testApp struct {
	*App
	remote    *mock.MockStyleServer
	clipboard *fakeClipboard
	in        *bytes.Buffer
	out       *bytes.Buffer
	errOut    *bytes.Buffer
}

func newTestApp(t *testing.T, withRemote bool, opts ...Option) *testApp {
	t.Helper()

	styles, err := service.NewStyleService(nil, config.Style{}, logger.Nop())
	require.NoError(t, err)

	ta := &testApp{
		clipboard: &fakeClipboard{},
		in:        &bytes.Buffer{},
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
	}

	var remote adapter.StyleServer
	if withRemote {
		ta.remote = mock.NewMockStyleServer(gomock.NewController(t))
		remote = ta.remote
	}

	opts = append([]Option{
		WithIO(ta.in, ta.out, ta.errOut),
		WithClipboard(ta.clipboard),
	}, opts...)
	ta.App = NewApp(styles, remote, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop(), opts...)
	return ta
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApp_Usage(t *testing.T) {
	ta := newTestApp(t, false)

	assert.ErrorIs(t, ta.Run(context.Background(), nil), ErrUsage)
	assert.Contains(t, ta.errOut.String(), "usage: stylectl")

	assert.ErrorIs(t, ta.Run(context.Background(), []string{"bogus"}), ErrUsage)
	assert.Contains(t, ta.errOut.String(), `unknown command "bogus"`)

	require.NoError(t, ta.Run(context.Background(), []string{"help"}))
	assert.Contains(t, ta.out.String(), "remote commands:")
}

func TestApp_Commands(t *testing.T) {
	ta := newTestApp(t, false)
	assert.Equal(t, []string{
		"apply", "builtin", "check", "copy", "delete", "export", "fmt",
		"list", "pull", "push", "show", "version",
	}, ta.Commands())
}

func TestApp_RemoteCommandsNeedServer(t *testing.T) {
	ta := newTestApp(t, false)
	for _, cmd := range []string{"list", "pull", "push", "delete"} {
		assert.ErrorIs(t, ta.Run(context.Background(), []string{cmd}), ErrNoRemote, cmd)
	}
}

func TestApp_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "ok.mplstyle", "legend.frameon: False\naxes.formatter.limits: -4, 4\n")

		require.NoError(t, ta.Run(ctx, []string{"check", path}))
		assert.Contains(t, ta.out.String(), path+": style is valid (2 keys, 2 applied)")
	})

	t.Run("parse error names file and line", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "bad.mplstyle", "font.size: 9\nno separator here\n")

		err := ta.Run(ctx, []string{"check", path})
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, ta.errOut.String(), path+":2:")
	})

	t.Run("coercion error", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "coerce.mplstyle", "legend.frameon: maybe\n")

		err := ta.Run(ctx, []string{"check", path})
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, ta.out.String(), "style is invalid")
	})

	t.Run("missing file keeps checking", func(t *testing.T) {
		ta := newTestApp(t, false)
		ok := writeFile(t, "ok.mplstyle", "font.size: 9\n")

		err := ta.Run(ctx, []string{"check", filepath.Join(t.TempDir(), "nope"), ok})
		require.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, err.Error(), "1 of 2 files")
		assert.Contains(t, ta.out.String(), ok+": style is valid")
	})

	t.Run("stdin", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.in.WriteString("font.size: 9\n")

		require.NoError(t, ta.Run(ctx, []string{"check", "-"}))
		assert.Contains(t, ta.out.String(), "-: style is valid")
	})

	t.Run("no files", func(t *testing.T) {
		ta := newTestApp(t, false)
		assert.ErrorIs(t, ta.Run(ctx, []string{"check"}), ErrUsage)
	})
}

func TestApp_Show(t *testing.T) {
	ta := newTestApp(t, false)

	require.NoError(t, ta.Run(context.Background(), []string{"show", "builtin:latex"}))
	out := ta.out.String()
	assert.Contains(t, out, "builtin:latex")
	assert.Contains(t, out, "axes.prop_cycle")
	assert.Contains(t, out, "17 settings")

	// buffers are not terminals, so the browser never starts
	plain := newTestApp(t, false)
	require.NoError(t, plain.Run(context.Background(), []string{"show", "-plain", "builtin:latex", "builtin:latex"}))
	assert.Contains(t, plain.out.String(), "builtin:latex + builtin:latex")
	assert.Contains(t, plain.out.String(), "17 settings")
}

func TestApp_Format(t *testing.T) {
	ctx := context.Background()
	body := "# comment\n\nfont.size :   9   # trailing\nlegend.frameon:False\n"

	t.Run("stdout", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "f.mplstyle", body)

		require.NoError(t, ta.Run(ctx, []string{"fmt", path}))
		assert.Equal(t, "# comment\n\nfont.size: 9\nlegend.frameon: False\n", ta.out.String())
	})

	t.Run("in place", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "f.mplstyle", body)

		require.NoError(t, ta.Run(ctx, []string{"fmt", "-w", path}))
		assert.Empty(t, ta.out.String())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# comment\n\nfont.size: 9\nlegend.frameon: False\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("in place needs a file", func(t *testing.T) {
		ta := newTestApp(t, false)
		assert.ErrorIs(t, ta.Run(ctx, []string{"fmt", "-w", "-"}), ErrUsage)
	})

	t.Run("parse error", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "f.mplstyle", "oops\n")

		err := ta.Run(ctx, []string{"fmt", "-w", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), path+":1:")

		got, _ := os.ReadFile(path)
		assert.Equal(t, "oops\n", string(got))
	})
}

func TestApp_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("latex", func(t *testing.T) {
		ta := newTestApp(t, false)

		require.NoError(t, ta.Run(ctx, []string{"apply", "builtin:latex"}))

		var params rcparams.Params
		require.NoError(t, json.Unmarshal(ta.out.Bytes(), &params))
		assert.False(t, params.Legend.FrameOn)
		assert.Equal(t, [2]int{-4, 4}, params.Axes.FormatterLimits)
		assert.True(t, params.Axes.Grid)
	})

	t.Run("later ref wins", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "o.mplstyle", "legend.frameon: True\n")

		require.NoError(t, ta.Run(ctx, []string{"apply", "builtin:latex", path}))

		var params rcparams.Params
		require.NoError(t, json.Unmarshal(ta.out.Bytes(), &params))
		assert.True(t, params.Legend.FrameOn)
	})

	t.Run("unknown key error policy", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "u.mplstyle", "made.up: 1\n")

		err := ta.Run(ctx, []string{"apply", "-unknown-keys", "error", path})
		assert.ErrorIs(t, err, rcparams.ErrUnknownKey)
	})

	t.Run("bad policy", func(t *testing.T) {
		ta := newTestApp(t, false)
		err := ta.Run(ctx, []string{"apply", "-unknown-keys", "loud", "builtin:latex"})
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("coercion error", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "c.mplstyle", "lines.linewidth: wide\n")

		var coercion *rcparams.TypeCoercionError
		assert.ErrorAs(t, ta.Run(ctx, []string{"apply", path}), &coercion)
	})
}

func TestApp_Export(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "e.mplstyle", "font.size: 9\nlegend.frameon: False\n")

	t.Run("rc", func(t *testing.T) {
		ta := newTestApp(t, false)
		require.NoError(t, ta.Run(ctx, []string{"export", path}))
		assert.Equal(t, "font.size: 9\nlegend.frameon: False\n", ta.out.String())
	})

	t.Run("json", func(t *testing.T) {
		ta := newTestApp(t, false)
		require.NoError(t, ta.Run(ctx, []string{"export", "-format", "json", path}))

		var got map[string]string
		require.NoError(t, json.Unmarshal(ta.out.Bytes(), &got))
		assert.Equal(t, map[string]string{"font.size": "9", "legend.frameon": "False"}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		ta := newTestApp(t, false)
		require.NoError(t, ta.Run(ctx, []string{"export", "-format", "YAML", path}))

		var got map[string]string
		require.NoError(t, yaml.Unmarshal(ta.out.Bytes(), &got))
		assert.Equal(t, "False", got["legend.frameon"])
	})

	t.Run("unknown format", func(t *testing.T) {
		ta := newTestApp(t, false)
		assert.ErrorIs(t, ta.Run(ctx, []string{"export", "-format", "toml", path}), ErrUsage)
	})
}

func TestApp_Copy(t *testing.T) {
	ctx := context.Background()

	ta := newTestApp(t, false)
	path := writeFile(t, "c.mplstyle", "font.size :9\n")
	require.NoError(t, ta.Run(ctx, []string{"copy", path}))
	assert.Equal(t, "font.size: 9\n", ta.clipboard.text)
	assert.Contains(t, ta.errOut.String(), "copied to clipboard: 1 settings")

	failing := newTestApp(t, false)
	failing.clipboard.err = errClipboardUnsupported
	assert.ErrorIs(t, failing.Run(ctx, []string{"copy", path}), errClipboardUnsupported)
}

func TestApp_DuplicatePolicy(t *testing.T) {
	ctx := context.Background()
	dup := "font.size: 9\nfont.size: 10\n"

	t.Run("last wins by default", func(t *testing.T) {
		ta := newTestApp(t, false)
		path := writeFile(t, "d.mplstyle", dup)

		require.NoError(t, ta.Run(ctx, []string{"fmt", path}))
		assert.Equal(t, "font.size: 10\n", ta.out.String())
	})

	t.Run("fmt rejects", func(t *testing.T) {
		ta := newTestApp(t, false, WithDuplicates(style.DuplicatesReject))
		path := writeFile(t, "d.mplstyle", dup)

		err := ta.Run(ctx, []string{"fmt", "-w", path})
		require.ErrorIs(t, err, style.ErrDuplicateKey)
		assert.Contains(t, err.Error(), path+":2:")

		got, _ := os.ReadFile(path)
		assert.Equal(t, dup, string(got))
	})

	t.Run("stdin rejects", func(t *testing.T) {
		ta := newTestApp(t, false, WithDuplicates(style.DuplicatesReject))
		ta.in.WriteString(dup)

		assert.ErrorIs(t, ta.Run(ctx, []string{"export", "-"}), style.ErrDuplicateKey)
	})

	t.Run("push rejects before upload", func(t *testing.T) {
		ta := newTestApp(t, true, WithDuplicates(style.DuplicatesReject))
		path := writeFile(t, "d.mplstyle", dup)

		assert.ErrorIs(t, ta.Run(ctx, []string{"push", "paper", path}), style.ErrDuplicateKey)
	})

	t.Run("remote ref rejects", func(t *testing.T) {
		ta := newTestApp(t, true, WithDuplicates(style.DuplicatesReject))
		ta.remote.EXPECT().FetchStyle(gomock.Any(), "paper").
			Return(models.Style{Name: "paper", Body: dup}, nil)

		assert.ErrorIs(t, ta.Run(ctx, []string{"show", "remote:paper"}), style.ErrDuplicateKey)
	})
}

func TestApp_Builtin(t *testing.T) {
	ta := newTestApp(t, false)
	require.NoError(t, ta.Run(context.Background(), []string{"builtin"}))
	assert.Contains(t, strings.Split(ta.out.String(), "\n"), "latex")
}

func TestApp_Remote(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().ListStyles(gomock.Any()).
			Return([]models.StyleSummary{{Name: "paper", Checksum: "abc"}}, nil)

		require.NoError(t, ta.Run(ctx, []string{"list"}))
		assert.Contains(t, ta.out.String(), "paper")
	})

	t.Run("pull to stdout", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().FetchStyle(gomock.Any(), "paper").
			Return(models.Style{Name: "paper", Body: "font.size: 9\n"}, nil)

		require.NoError(t, ta.Run(ctx, []string{"pull", "paper"}))
		assert.Equal(t, "font.size: 9\n", ta.out.String())
	})

	t.Run("pull to file", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().FetchStyle(gomock.Any(), "paper").
			Return(models.Style{Name: "paper", Body: "font.size: 9\n"}, nil)
		path := filepath.Join(t.TempDir(), "paper.mplstyle")

		require.NoError(t, ta.Run(ctx, []string{"pull", "-o", path, "paper"}))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "font.size: 9\n", string(got))
	})

	t.Run("pull not found", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().FetchStyle(gomock.Any(), "nope").
			Return(models.Style{}, adapter.ErrNotFound)

		assert.ErrorIs(t, ta.Run(ctx, []string{"pull", "nope"}), adapter.ErrNotFound)
	})

	t.Run("push", func(t *testing.T) {
		ta := newTestApp(t, true)
		path := writeFile(t, "p.mplstyle", "font.size: 9\n")
		ta.remote.EXPECT().PushStyle(gomock.Any(), "paper", []byte("font.size: 9\n")).
			Return(models.SaveStyleResponse{Style: models.StyleSummary{Name: "paper", Checksum: "abc"}, Created: true}, nil)

		require.NoError(t, ta.Run(ctx, []string{"push", "paper", path}))
		assert.Equal(t, "style created: paper (abc)\n", ta.out.String())
	})

	t.Run("push replaced", func(t *testing.T) {
		ta := newTestApp(t, true)
		path := writeFile(t, "p.mplstyle", "font.size: 9\n")
		ta.remote.EXPECT().PushStyle(gomock.Any(), "paper", gomock.Any()).
			Return(models.SaveStyleResponse{Style: models.StyleSummary{Name: "paper", Checksum: "abc"}}, nil)

		require.NoError(t, ta.Run(ctx, []string{"push", "paper", path}))
		assert.Contains(t, ta.out.String(), "style replaced")
	})

	t.Run("push parse error stays local", func(t *testing.T) {
		ta := newTestApp(t, true)
		path := writeFile(t, "p.mplstyle", "broken\n")

		err := ta.Run(ctx, []string{"push", "paper", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), path+":1:")
	})

	t.Run("push needs two args", func(t *testing.T) {
		ta := newTestApp(t, true)
		assert.ErrorIs(t, ta.Run(ctx, []string{"push", "paper"}), ErrUsage)
	})

	t.Run("delete", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().DeleteStyle(gomock.Any(), "paper").Return(nil)

		require.NoError(t, ta.Run(ctx, []string{"delete", "paper"}))
		assert.Equal(t, "style deleted: paper\n", ta.out.String())
	})

	t.Run("show remote ref", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().FetchStyle(gomock.Any(), "paper").
			Return(models.Style{Name: "paper", Body: "grid.color: 0.75\n"}, nil)

		require.NoError(t, ta.Run(ctx, []string{"show", "remote:paper"}))
		assert.Contains(t, ta.out.String(), "grid.color")
	})

	t.Run("remote ref without server", func(t *testing.T) {
		ta := newTestApp(t, false)
		assert.ErrorIs(t, ta.Run(ctx, []string{"show", "remote:paper"}), ErrNoRemote)
	})
}

func TestApp_Version(t *testing.T) {
	ctx := context.Background()

	t.Run("with server", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "9.9.9"}, nil)

		require.NoError(t, ta.Run(ctx, []string{"version"}))
		assert.Contains(t, ta.out.String(), "Version: 1.2.3")
		assert.Contains(t, ta.out.String(), "Server version: 9.9.9")
	})

	t.Run("server down", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.remote.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{}, errors.New("connection refused"))

		require.NoError(t, ta.Run(ctx, []string{"version"}))
		assert.NotContains(t, ta.out.String(), "Server version")
	})
}
