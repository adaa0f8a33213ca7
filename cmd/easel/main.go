package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/easel/internal/clipboard"
	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/notify"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

// writeClipboardFn publishes an image to the clipboard. Tests replace it.
var writeClipboardFn = clipboard.WriteImage

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	logger       *slog.Logger
	exportAlerts bool
	copyAlerts   bool
	verbose      bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:      program,
		notifier:     r.notifier,
		config:       r.config,
		logger:       r.logger,
		exportAlerts: r.exportAlerts,
		copyAlerts:   r.copyAlerts,
		verbose:      r.verbose,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences(os.LookupEnv)
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("easel", flag.ExitOnError),
		program:  "easel",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.verbose, "v", false, "log engine diagnostics to stderr")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	level := slog.LevelWarn
	if r.verbose {
		level = slog.LevelDebug
	}
	r.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "tools":
		cmd, err = parseListCmd("tools", subArgs, r, listTools)
	case "formats":
		cmd, err = parseListCmd("formats", subArgs, r, listFormats)
	case "colors":
		cmd, err = parseListCmd("colors", subArgs, r, listColors)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd, err = parseVersionCmd(subArgs, r)
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine builds an engine with a w x h canvas and the configured style.
func (r *root) newEngine(w, h int) *engine.Engine {
	opts := []engine.Option{engine.WithCanvas(w, h)}
	if r.config != nil {
		opts = append(opts,
			engine.WithStyle(r.config.Style),
			engine.WithHistoryLimit(r.config.HistoryLimit),
			engine.WithJPEGQuality(r.config.JPEGQuality),
		)
	}
	if r.logger != nil {
		opts = append(opts, engine.WithLogger(r.logger))
	}
	return engine.New(opts...)
}

// writeArtifact stores a under dir, or at path when path is set, and returns
// where it was written.
func (r *root) writeArtifact(a export.Artifact, dir, path string) (string, error) {
	if path == "" {
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, a.Name)
	}
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", parent, err)
		}
	}
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	r.notifyExport(path)
	return path, nil
}

func (r *root) copyImage(img image.Image) error {
	if err := writeClipboardFn(img); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	r.notifyCopy(img)
	return nil
}

func (r *root) saveDir() string {
	if r.config == nil {
		return ""
	}
	return r.config.SaveDir
}

func (r *root) notifyExport(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(path)
}

func (r *root) notifyCopy(img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(img)
}
