package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/style"
)

const (
	refRemote = "remote:"
	stdinName = "-"
)

// resolve loads one ref. remote: refs are fetched from the server, "-" is
// read from standard input, everything else goes to the style service.
func (a *App) resolve(ctx context.Context, ref string) (*style.Document, error) {
	switch {
	case ref == stdinName:
		return style.Parse(a.in, a.parseOptions("<stdin>")...)

	case strings.HasPrefix(ref, refRemote):
		if a.remote == nil {
			return nil, ErrNoRemote
		}
		name := strings.TrimPrefix(ref, refRemote)
		stored, err := a.remote.FetchStyle(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("error fetching %q: %w", name, err)
		}
		return style.ParseString(stored.Body, a.parseOptions(ref)...)

	default:
		return a.styles.Resolve(ctx, ref)
	}
}

// compose resolves refs in order and merges them, later refs winning.
func (a *App) compose(ctx context.Context, refs []string) (*style.Document, error) {
	docs := make([]*style.Document, 0, len(refs))
	for _, ref := range refs {
		doc, err := a.resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return style.Merge(docs...), nil
}

// readInput reads a file, or standard input for "-".
func (a *App) readInput(path string) ([]byte, error) {
	if path == stdinName {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(path)
}

// parseOptions names source and applies the configured duplicate policy.
func (a *App) parseOptions(source string) []style.Option {
	return []style.Option{style.WithSource(source), style.WithDuplicates(a.duplicates)}
}
