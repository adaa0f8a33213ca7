package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/script"
)

// interactiveCmd reads script commands from stdin against one canvas.
type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i := &interactiveCmd{
		root:   r.subcommand("interactive"),
		fs:     fs,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	fs.Usage = usageFunc(i)
	fs.IntVar(&i.width, "width", r.config.Width, "canvas width in pixels")
	fs.IntVar(&i.height, "height", r.config.Height, "canvas height in pixels")
	fs.StringVar(&i.dir, "dir", r.saveDir(), "directory export commands write into")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	runner := script.New(i.newEngine(i.width, i.height),
		script.WithOutput(i.stdout),
		script.WithExport(func(a export.Artifact) error {
			path, err := i.writeArtifact(a, i.dir, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(i.stdout, "wrote %s\n", path)
			return nil
		}),
		script.WithCopy(i.copyImage),
	)
	fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if err := runner.Exec(line); err != nil {
			fmt.Fprintln(i.stderr, err)
		}
	}
	return scanner.Err()
}
