package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/style"
)

// listCmd prints one of the built-in catalogues.
type listCmd struct {
	*root
	fs    *flag.FlagSet
	name  string
	print func(c *listCmd, w io.Writer) error
}

func parseListCmd(name string, args []string, r *root, print func(*listCmd, io.Writer) error) (*listCmd, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cmd := &listCmd{root: r.subcommand(name), fs: fs, name: name, print: print}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *listCmd) Run() error {
	return c.print(c, os.Stdout)
}

func (c *listCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *listCmd) Template() string {
	return c.name + ".txt"
}

func listTools(_ *listCmd, w io.Writer) error {
	fmt.Fprintln(w, "available tools (* marks the default tool):")
	for _, t := range engine.Tools() {
		marker := " "
		if t == engine.Pencil {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-10s %s\n", marker, t, t.Summary())
	}
	return nil
}

func listFormats(_ *listCmd, w io.Writer) error {
	fmt.Fprintln(w, "available export formats:")
	for _, f := range export.Formats() {
		fmt.Fprintf(w, "  %-5s %-5s %-16s %s\n", f, f.Extension(), f.MediaType(), f.Summary())
	}
	return nil
}

func listColors(c *listCmd, w io.Writer) error {
	palette := style.Palette()
	if len(palette) == 0 {
		fmt.Fprintln(w, "no colors available")
		return nil
	}
	stroke := style.Default().Stroke
	if c.config != nil {
		stroke = c.config.Style.Stroke
	}
	fmt.Fprintln(w, "available palette colors (* marks the stroke color):")
	for idx, entry := range palette {
		marker := " "
		if entry.Color == stroke {
			marker = "*"
		}
		hex := style.FormatColor(entry.Color)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(w, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, hex, block)
	}
	fmt.Fprintln(w, "any CSS colour name, #RGB, #RRGGBB or #RRGGBBAA is also accepted")
	return nil
}
