package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/adapter"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/tui"
	"github.com/MKhiriev/go-plot-style/models"
)

const usage = `usage: stylectl <command> [arguments]

local commands:
  check FILE...                 validate style files, exit 1 on any failure
  show [-plain] REF...          browse a style on a terminal, or print it as
                                tables with color swatches
  fmt [-w] FILE                 print normalized text, or rewrite FILE in place;
                                the leading comment block is kept, other
                                comments are dropped
  apply REF...                  print the resolved renderer parameters as JSON
  export [-format F] REF...     print the composed style as rc, json or yaml
  copy REF...                   copy the composed style text to the clipboard
  builtin                       list embedded styles

remote commands:
  list                          list styles stored on the server
  pull [-o FILE] NAME           download a stored style
  push NAME FILE                upload FILE as NAME
  delete NAME                   remove a stored style
  version                       print build info and the server version

REF is builtin:NAME, file:PATH, remote:NAME or a plain path. FILE may be "-"
for standard input.
`

type command struct {
	run    func(ctx context.Context, fs *flag.FlagSet, args []string) error
	remote bool
}

// App is the stylectl application.
type App struct {
	styles    service.StyleService
	remote    adapter.StyleServer
	clipboard Clipboard
	ui        *tui.TUI
	build     models.AppBuildInfo

	duplicates style.DuplicatePolicy

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// Option customizes an [App].
type Option func(*App)

// WithIO replaces standard input and output.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithDuplicates sets the duplicate key policy for text the app parses
// itself (stdin, remote styles, fmt and push).
func WithDuplicates(p style.DuplicatePolicy) Option {
	return func(a *App) {
		a.duplicates = p
	}
}

// NewApp builds stylectl over a local style service and an optional remote
// server.
func NewApp(styles service.StyleService, remote adapter.StyleServer, build models.AppBuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		styles:    styles,
		remote:    remote,
		clipboard: SystemClipboard(),
		build:     build,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ui = tui.New(a.out, tui.WithInput(a.in))

	a.commands = map[string]command{
		"check":   {run: a.check},
		"show":    {run: a.show},
		"fmt":     {run: a.format},
		"apply":   {run: a.apply},
		"export":  {run: a.export},
		"copy":    {run: a.copy},
		"builtin": {run: a.listBuiltin},
		"list":    {run: a.list, remote: true},
		"pull":    {run: a.pull, remote: true},
		"push":    {run: a.push, remote: true},
		"delete":  {run: a.remove, remote: true},
		"version": {run: a.version},
	}
	return a
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		io.WriteString(a.errOut, usage)
		return ErrUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		_, err := io.WriteString(a.out, usage)
		return err
	}

	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintf(a.errOut, "stylectl: unknown command %q\n\n%s", name, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if cmd.remote && a.remote == nil {
		return ErrNoRemote
	}

	ctx = a.logger.WithContext(ctx)
	fs := flag.NewFlagSet("stylectl "+name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	a.logger.Debug().Str("command", name).Strs("args", args[1:]).Msg("running command")
	return cmd.run(ctx, fs, args[1:])
}

// Commands returns the sorted subcommand names.
func (a *App) Commands() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// parseArgs parses fs and checks the positional argument count.
func parseArgs(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	rest := fs.Args()
	if len(rest) < minArgs || (maxArgs >= 0 && len(rest) > maxArgs) {
		return nil, fmt.Errorf("%w: %s expects %s", ErrUsage, strings.TrimPrefix(fs.Name(), "stylectl "), argCount(minArgs, maxArgs))
	}
	return rest, nil
}

func argCount(minArgs, maxArgs int) string {
	switch {
	case maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", minArgs)
	case minArgs == maxArgs:
		return fmt.Sprintf("%d arguments", minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", minArgs, maxArgs)
	}
}
