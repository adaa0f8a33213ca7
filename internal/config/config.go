package config

import (
	"fmt"
	"strings"

	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/style"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	SaveDir      string
	FileName     string
	Width        int
	Height       int
	HistoryLimit int
	JPEGQuality  int
	Style        style.Style
	Notify       Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		FileName:    export.DefaultName,
		Width:       1024,
		Height:      700,
		JPEGQuality: export.DefaultJPEGQuality,
		Style:       style.Default(),
	}
}

// ApplyEnv overrides settings from the environment. EASEL_SAVE_DIR replaces
// save_dir.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("EASEL_SAVE_DIR"); ok && strings.TrimSpace(v) != "" {
		c.SaveDir = strings.TrimSpace(v)
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.FileName != "" {
		fmt.Fprintf(&sb, "file_name = %s\n", c.FileName)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "history_limit = %d\n", c.HistoryLimit)
	fmt.Fprintf(&sb, "jpeg_quality = %d\n", c.JPEGQuality)
	sb.WriteString("\n")

	sb.WriteString("[style]\n")
	fmt.Fprintf(&sb, "stroke = %s\n", style.FormatColor(c.Style.Stroke))
	fmt.Fprintf(&sb, "fill = %s\n", style.FormatColor(c.Style.Fill))
	fmt.Fprintf(&sb, "brush = %d\n", c.Style.Brush)
	fmt.Fprintf(&sb, "fill_mode = %v\n", c.Style.FillMode)
	fmt.Fprintf(&sb, "sides = %d\n", c.Style.Sides)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	return sb.String()
}
