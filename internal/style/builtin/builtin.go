// Package builtin embeds the style documents shipped with the module.
package builtin

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/style"
)

// Latex is the name of the latex-like style.
const Latex = "latex"

const ext = ".mplstyle"

//go:embed *.mplstyle
var files embed.FS

// ErrUnknownStyle is returned for a name with no embedded document.
var ErrUnknownStyle = errors.New("unknown builtin style")

// Names returns the sorted names of the embedded styles.
func Names() []string {
	entries, _ := fs.ReadDir(files, ".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ext) {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	slices.Sort(names)
	return names
}

// Bytes returns the verbatim file content of the named style.
func Bytes(name string) ([]byte, error) {
	b, err := files.ReadFile(path.Clean(name) + ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return b, nil
}

// Load parses the named style.
func Load(name string, opts ...style.Option) (*style.Document, error) {
	b, err := Bytes(name)
	if err != nil {
		return nil, err
	}
	opts = append([]style.Option{style.WithSource("builtin:" + name)}, opts...)
	return style.ParseBytes(b, opts...)
}
