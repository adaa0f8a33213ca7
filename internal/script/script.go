// Package script drives an engine from a line-oriented command language, one
// command per line. A word starting with # begins a comment, except the
// colour argument of stroke and fill, which may be a #RRGGBB value. It backs
// the replay and interactive subcommands.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/style"
)

// ErrUnknownCommand is returned for a command word the runner does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrNoHandler is returned by export and copy when no handler is configured.
var ErrNoHandler = errors.New("no handler configured")

// ExportFunc receives every artifact produced by an export command.
type ExportFunc func(export.Artifact) error

// CopyFunc receives the canvas image for a copy command.
type CopyFunc func(image.Image) error

// Runner executes commands against one engine.
type Runner struct {
	eng      *engine.Engine
	onExport ExportFunc
	onCopy   CopyFunc
	out      io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithExport sets the destination of export commands.
func WithExport(fn ExportFunc) Option { return func(r *Runner) { r.onExport = fn } }

// WithCopy sets the destination of copy commands.
func WithCopy(fn CopyFunc) Option { return func(r *Runner) { r.onCopy = fn } }

// WithOutput sets where status and help text is written.
func WithOutput(w io.Writer) Option { return func(r *Runner) { r.out = w } }

// New returns a runner bound to e.
func New(e *engine.Engine, opts ...Option) *Runner {
	r := &Runner{eng: e, out: io.Discard}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine returns the engine the runner drives.
func (r *Runner) Engine() *engine.Engine { return r.eng }

// Run executes every line read from rd and stops at the first failure. The
// returned error names the offending line number.
func (r *Runner) Run(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	n := 0
	for scanner.Scan() {
		n++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

// Exec executes a single command line. Blank lines and comments are ignored.
func (r *Runner) Exec(line string) error {
	args := stripComment(strings.Fields(line))
	if len(args) == 0 {
		return nil
	}
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	params := args[1:]
	if len(params) < cmd.min || (cmd.max >= 0 && len(params) > cmd.max) {
		return fmt.Errorf("usage: %s %s", name, cmd.usage)
	}
	if err := cmd.run(r, params); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// colorCommands take a colour as their only argument.
var colorCommands = map[string]bool{"stroke": true, "fill": true}

func stripComment(fields []string) []string {
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 1 && colorCommands[strings.ToLower(fields[0])] {
			continue
		}
		return fields[:i]
	}
	return fields
}

type command struct {
	usage    string
	summary  string
	min, max int
	run      func(r *Runner, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"tool":     {"NAME", "select the active tool", 1, 1, cmdTool},
		"stroke":   {"COLOR", "set the stroke colour", 1, 1, cmdStroke},
		"fill":     {"COLOR", "set the fill colour", 1, 1, cmdFill},
		"brush":    {"N", "set the brush width in pixels", 1, 1, cmdBrush},
		"fillmode": {"on|off|toggle", "fill closed shapes", 1, 1, cmdFillMode},
		"sides":    {"N", "set the polygon side count (3-12)", 1, 1, cmdSides},
		"down":     {"X Y", "press the pointer", 2, 2, cmdDown},
		"move":     {"X Y", "move the pointer", 2, 2, cmdMove},
		"up":       {"", "release the pointer", 0, 0, cmdUp},
		"leave":    {"", "move the pointer off the canvas", 0, 0, cmdLeave},
		"drag":     {"X0 Y0 X1 Y1 [STEPS]", "press, move in STEPS steps and release", 4, 5, cmdDrag},
		"clear":    {"", "clear the canvas", 0, 0, func(r *Runner, _ []string) error { r.eng.Clear(); return nil }},
		"undo":     {"", "undo the last change", 0, 0, func(r *Runner, _ []string) error { r.eng.Undo(); return nil }},
		"redo":     {"", "redo the last undone change", 0, 0, func(r *Runner, _ []string) error { r.eng.Redo(); return nil }},
		"resize":   {"W H", "resize the canvas", 2, 2, cmdResize},
		"export":   {"FORMAT [NAME]", "export the canvas", 1, 2, cmdExport},
		"copy":     {"", "copy the canvas to the clipboard", 0, 0, cmdCopy},
		"status":   {"", "print tool, style and history depth", 0, 0, cmdStatus},
		"help":     {"", "list commands", 0, 0, cmdHelp},
	}
}

// Commands returns the command names with their usage, sorted by name.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, len(names))
	for i, name := range names {
		c := commands[name]
		out[i] = strings.TrimSpace(name+" "+c.usage) + "\t" + c.summary
	}
	return out
}

func cmdTool(r *Runner, args []string) error {
	t, err := engine.ParseTool(args[0])
	if err != nil {
		return err
	}
	r.eng.SetTool(t)
	return nil
}

func cmdStroke(r *Runner, args []string) error {
	c, err := style.ParseColor(args[0])
	if err != nil {
		return err
	}
	r.eng.UpdateStyle(func(s *style.Style) { s.Stroke = c })
	return nil
}

func cmdFill(r *Runner, args []string) error {
	c, err := style.ParseColor(args[0])
	if err != nil {
		return err
	}
	r.eng.UpdateStyle(func(s *style.Style) { s.Fill = c })
	return nil
}

func cmdBrush(r *Runner, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	if n < style.MinBrush {
		return fmt.Errorf("width must be at least %d", style.MinBrush)
	}
	r.eng.UpdateStyle(func(s *style.Style) { s.Brush = n })
	return nil
}

func cmdFillMode(r *Runner, args []string) error {
	var on bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "1", "yes":
		on = true
	case "off", "false", "0", "no":
		on = false
	case "toggle":
		on = !r.eng.Style().FillMode
	default:
		return fmt.Errorf("expected on, off or toggle, got %q", args[0])
	}
	r.eng.UpdateStyle(func(s *style.Style) { s.FillMode = on })
	return nil
}

func cmdSides(r *Runner, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid side count %q: %w", args[0], err)
	}
	if n < style.MinSides || n > style.MaxSides {
		return fmt.Errorf("side count must be between %d and %d", style.MinSides, style.MaxSides)
	}
	r.eng.UpdateStyle(func(s *style.Style) { s.Sides = n })
	return nil
}

func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid coordinate %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func cmdDown(r *Runner, args []string) error {
	p, err := parseCoords(args)
	if err != nil {
		return err
	}
	r.eng.PointerDown(p[0], p[1])
	return nil
}

func cmdMove(r *Runner, args []string) error {
	p, err := parseCoords(args)
	if err != nil {
		return err
	}
	r.eng.PointerMove(p[0], p[1])
	return nil
}

func cmdUp(r *Runner, _ []string) error {
	r.eng.PointerUp()
	return nil
}

func cmdLeave(r *Runner, _ []string) error {
	r.eng.PointerLeave()
	return nil
}

func cmdDrag(r *Runner, args []string) error {
	p, err := parseCoords(args[:4])
	if err != nil {
		return err
	}
	steps := 1
	if len(args) == 5 {
		steps, err = strconv.Atoi(args[4])
		if err != nil || steps < 1 {
			return fmt.Errorf("invalid step count %q", args[4])
		}
	}
	x0, y0, x1, y1 := p[0], p[1], p[2], p[3]
	r.eng.PointerDown(x0, y0)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.eng.PointerMove(x0+(x1-x0)*t, y0+(y1-y0)*t)
	}
	r.eng.PointerUp()
	return nil
}

func cmdResize(r *Runner, args []string) error {
	w, err := strconv.Atoi(args[0])
	if err != nil || w < 1 {
		return fmt.Errorf("invalid width %q", args[0])
	}
	h, err := strconv.Atoi(args[1])
	if err != nil || h < 1 {
		return fmt.Errorf("invalid height %q", args[1])
	}
	r.eng.Resize(w, h)
	return nil
}

func cmdExport(r *Runner, args []string) error {
	if _, err := export.ParseFormat(args[0]); err != nil {
		return err
	}
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	a, ok := r.eng.Export(args[0], name)
	if !ok {
		return fmt.Errorf("nothing to export")
	}
	if r.onExport == nil {
		return ErrNoHandler
	}
	return r.onExport(a)
}

func cmdCopy(r *Runner, _ []string) error {
	img := r.eng.Image()
	if img == nil {
		return fmt.Errorf("nothing to copy")
	}
	if r.onCopy == nil {
		return ErrNoHandler
	}
	return r.onCopy(img)
}

func cmdStatus(r *Runner, _ []string) error {
	w, h := r.eng.Size()
	undo, redo := r.eng.HistoryDepth()
	_, err := fmt.Fprintf(r.out, "tool=%s %s size=%dx%d undo=%d redo=%d\n",
		r.eng.Tool(), r.eng.Style(), w, h, undo, redo)
	return err
}

func cmdHelp(r *Runner, _ []string) error {
	for _, line := range Commands() {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}
