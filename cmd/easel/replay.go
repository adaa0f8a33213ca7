package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/script"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

// replayCmd runs a drawing script without a window.
type replayCmd struct {
	*root
	fs          *flag.FlagSet
	file        string
	commands    commandList
	width       int
	height      int
	dir         string
	output      string
	toClipboard bool
	stdin       io.Reader
	stdout      io.Writer
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r.subcommand("replay"), fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "script file to run (- for stdin)")
	fs.Var(&c.commands, "e", "script command to run after the file (repeatable)")
	fs.IntVar(&c.width, "width", r.config.Width, "canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.Height, "canvas height in pixels")
	fs.StringVar(&c.dir, "dir", r.saveDir(), "directory export commands write into")
	fs.StringVar(&c.output, "output", "", "write the final canvas here; the extension picks the format")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the final canvas to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the final canvas to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 || (c.file == "" && len(c.commands) == 0) {
		return nil, &UsageError{of: c}
	}
	if c.width < 1 || c.height < 1 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	if c.output != "" {
		if _, err := export.FormatFromPath(c.output); err != nil {
			return nil, fmt.Errorf("output %s: %w", c.output, err)
		}
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	eng := c.newEngine(c.width, c.height)
	runner := script.New(eng,
		script.WithOutput(c.stdout),
		script.WithExport(func(a export.Artifact) error {
			path, err := c.writeArtifact(a, c.dir, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "wrote %s\n", path)
			return nil
		}),
		script.WithCopy(c.copyImage),
	)

	if c.file != "" {
		if err := c.runFile(runner); err != nil {
			return err
		}
	}
	if len(c.commands) > 0 {
		if err := runner.Run(strings.NewReader(strings.Join(c.commands, "\n"))); err != nil {
			return fmt.Errorf("-e: %w", err)
		}
	}

	if c.output != "" {
		f, err := export.FormatFromPath(c.output)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(filepath.Base(c.output), filepath.Ext(c.output))
		a, ok := eng.Export(f.String(), base)
		if !ok {
			return fmt.Errorf("failed to export %s", c.output)
		}
		path, err := c.writeArtifact(a, "", c.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "wrote %s\n", path)
	}
	if c.toClipboard {
		if err := c.copyImage(eng.Image()); err != nil {
			return err
		}
	}
	return nil
}

func (c *replayCmd) runFile(runner *script.Runner) error {
	if c.file == "-" {
		if err := runner.Run(c.stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}
	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := runner.Run(f); err != nil {
		return fmt.Errorf("%s: %w", c.file, err)
	}
	return nil
}
