package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/shiny/driver"

	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/window"
)

// paintCmd opens an interactive drawing window.
type paintCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	dir    string
	name   string
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r.subcommand("paint"), fs: fs}
	fs.Usage = usageFunc(p)
	fs.IntVar(&p.width, "width", r.config.Width, "canvas width in pixels")
	fs.IntVar(&p.height, "height", r.config.Height, "canvas height in pixels")
	fs.StringVar(&p.dir, "dir", r.saveDir(), "directory Ctrl+S saves into")
	fs.StringVar(&p.name, "name", r.config.FileName, "base file name for saved drawings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.width < 1 || p.height < 1 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", p.width, p.height)
	}
	return p, nil
}

func (p *paintCmd) Run() error {
	eng := p.newEngine(p.width, p.height)
	host := window.New(eng, window.Options{
		Title: "Easel",
		Name:  p.name,
		Save: func(a export.Artifact) error {
			path, err := p.writeArtifact(a, p.dir, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved %s\n", path)
			return nil
		},
		Copy:   p.copyImage,
		Logger: p.logger,
	})
	driver.Main(host.Main)
	return nil
}
