package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/style/builtin"
	"github.com/MKhiriev/go-plot-style/models"
)

const defaultFileMode = 0o644

func (a *App) check(ctx context.Context, fs *flag.FlagSet, args []string) error {
	paths, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		body, err := a.readInput(path)
		if err != nil {
			fmt.Fprintf(a.errOut, "%s: %v\n", path, err)
			failed++
			continue
		}

		report, err := a.styles.Validate(ctx, body)
		var parseErr *style.ParseError
		switch {
		case errors.As(err, &parseErr):
			parseErr.Source = path
			fmt.Fprintln(a.errOut, parseErr.Error())
			failed++
			continue
		case err != nil:
			return err
		}

		if err = a.ui.ShowReport(path, report); err != nil {
			return err
		}
		if !report.Valid {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(paths))
	}
	return nil
}

func (a *App) show(ctx context.Context, fs *flag.FlagSet, args []string) error {
	plain := fs.Bool("plain", false, "print tables even on a terminal")
	refs, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	doc, err := a.compose(ctx, refs)
	if err != nil {
		return err
	}

	title := strings.Join(refs, " + ")
	if !*plain && a.ui.Interactive() {
		return a.ui.Browse(ctx, title, doc)
	}
	return a.ui.ShowDocument(title, doc)
}

func (a *App) format(_ context.Context, fs *flag.FlagSet, args []string) error {
	write := fs.Bool("w", false, "write result to the file instead of stdout")
	paths, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	path := paths[0]
	if *write && path == stdinName {
		return fmt.Errorf("%w: -w needs a file", ErrUsage)
	}

	body, err := a.readInput(path)
	if err != nil {
		return err
	}
	doc, err := style.ParseBytes(body, a.parseOptions(path)...)
	if err != nil {
		return err
	}
	text := style.MarshalWithHeader(doc, style.HeaderComment(body))

	if !*write {
		_, err = a.out.Write(text)
		return err
	}
	return writeFileAtomic(path, text)
}

func (a *App) apply(ctx context.Context, fs *flag.FlagSet, args []string) error {
	policy := fs.String("unknown-keys", "", "unknown key policy (warn, ignore, error)")
	refs, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	doc, err := a.compose(ctx, refs)
	if err != nil {
		return err
	}

	opts := []rcparams.ApplyOption{rcparams.WithLogger(logger.FromContext(ctx))}
	if *policy != "" {
		p, err := rcparams.ParseUnknownKeyPolicy(*policy)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		opts = append(opts, rcparams.WithUnknownKeys(p))
	}

	params := rcparams.DefaultParams()
	if _, err = params.ApplyDocument(doc, opts...); err != nil {
		return err
	}
	return writeJSON(a.out, params)
}

func (a *App) export(ctx context.Context, fs *flag.FlagSet, args []string) error {
	format := fs.String("format", "rc", "output format (rc, json, yaml)")
	refs, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	doc, err := a.compose(ctx, refs)
	if err != nil {
		return err
	}

	switch strings.ToLower(*format) {
	case "rc":
		_, err = doc.WriteTo(a.out)
		return err
	case "json":
		return writeJSON(a.out, doc.Map())
	case "yaml", "yml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err = enc.Encode(doc.Map()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, *format)
	}
}

func (a *App) copy(ctx context.Context, fs *flag.FlagSet, args []string) error {
	refs, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	doc, err := a.compose(ctx, refs)
	if err != nil {
		return err
	}
	if err = a.clipboard.WriteAll(doc.String()); err != nil {
		return fmt.Errorf("error copying to clipboard: %w", err)
	}

	fmt.Fprintf(a.errOut, "%s: %d settings\n", app.MsgCopiedToClipboard, doc.Len())
	return nil
}

func (a *App) listBuiltin(_ context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}
	for _, name := range builtin.Names() {
		if _, err := fmt.Fprintln(a.out, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) list(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	styles, err := a.remote.ListStyles(ctx)
	if err != nil {
		return err
	}
	return a.ui.ShowStyles(styles)
}

func (a *App) pull(ctx context.Context, fs *flag.FlagSet, args []string) error {
	output := fs.String("o", "", "write the style to this file")
	names, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}

	stored, err := a.remote.FetchStyle(ctx, names[0])
	if err != nil {
		return err
	}

	if *output == "" {
		_, err = io.WriteString(a.out, stored.Body)
		return err
	}
	return writeFileAtomic(*output, []byte(stored.Body))
}

func (a *App) push(ctx context.Context, fs *flag.FlagSet, args []string) error {
	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return err
	}
	name, path := rest[0], rest[1]

	body, err := a.readInput(path)
	if err != nil {
		return err
	}
	// fail locally with the file name before uploading
	if _, err = style.ParseBytes(body, a.parseOptions(path)...); err != nil {
		return err
	}

	resp, err := a.remote.PushStyle(ctx, name, body)
	if err != nil {
		return err
	}

	msg := app.MsgStyleReplaced
	if resp.Created {
		msg = app.MsgStyleCreated
	}
	_, err = fmt.Fprintf(a.out, "%s: %s (%s)\n", msg, resp.Style.Name, resp.Style.Checksum)
	return err
}

func (a *App) remove(ctx context.Context, fs *flag.FlagSet, args []string) error {
	names, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}

	if err = a.remote.DeleteStyle(ctx, names[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s: %s\n", app.MsgStyleDeleted, names[0])
	return err
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	var server *models.VersionResponse
	if a.remote != nil {
		v, err := a.remote.Version(ctx)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("server version unavailable")
		} else {
			server = &v
		}
	}
	return a.ui.ShowBuildInfo(a.build, server)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFileAtomic replaces path, keeping the mode of an existing file.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := renameio.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
