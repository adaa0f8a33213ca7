package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
save_dir = /tmp/drawings
file_name = "sketch"
width = 800
height: 600
history_limit = 25
jpeg_quality = 75

[style]
stroke = #FF0000
fill = navy
brush = 9
fill_mode = true
sides = 7

[notify]
export = true
copy = false
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.SaveDir != "/tmp/drawings" {
		t.Errorf("Expected save_dir '/tmp/drawings', got '%s'", cfg.SaveDir)
	}
	if cfg.FileName != "sketch" {
		t.Errorf("Expected file_name 'sketch', got '%s'", cfg.FileName)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("Unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.HistoryLimit != 25 {
		t.Errorf("Expected history_limit 25, got %d", cfg.HistoryLimit)
	}
	if cfg.JPEGQuality != 75 {
		t.Errorf("Expected jpeg_quality 75, got %d", cfg.JPEGQuality)
	}

	if cfg.Style.Stroke != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Unexpected stroke color: %+v", cfg.Style.Stroke)
	}
	if cfg.Style.Fill != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("Unexpected fill color: %+v", cfg.Style.Fill)
	}
	if cfg.Style.Brush != 9 || cfg.Style.Sides != 7 || !cfg.Style.FillMode {
		t.Errorf("Unexpected style: %+v", cfg.Style)
	}

	if !cfg.Notify.Export {
		t.Error("Expected notify.export to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# empty\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := New()
	if *cfg != *want {
		t.Errorf("Expected defaults %+v, got %+v", want, cfg)
	}
	if cfg.FileName != "my-drawing" || cfg.JPEGQuality != 90 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestParseClampsSides(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[style]\nsides = 40\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Style.Sides != 12 {
		t.Errorf("Expected sides clamped to 12, got %d", cfg.Style.Sides)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"width = wide\n":              "invalid integer",
		"height = 0\n":                "must be positive",
		"jpeg_quality = 101\n":        "between 1 and 100",
		"[style]\nstroke = nope\n":    "[style]",
		"[notify]\nexport = maybe\n":  "invalid boolean",
		"\n\n[style]\nbrush = -1\n":   "line 4",
		"[style]\nfill_mode = sure\n": "fill_mode",
	}
	for input, want := range cases {
		_, err := Parse(strings.NewReader(input))
		if err == nil {
			t.Errorf("Expected error for %q", input)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error for %q to contain %q, got %v", input, want, err)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `save_dir = /home/user/drawings
file_name = doodle
width = 640
height = 480
history_limit = 10
jpeg_quality = 80

[style]
stroke = #102030
fill = #A0B0C080
brush = 3
fill_mode = true
sides = 6

[notify]
export = true
copy = true
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare
	if *cfg != *cfg2 {
		t.Errorf("Config mismatch:\n%+v\nvs\n%+v", cfg, cfg2)
	}
	if generated != cfg2.String() {
		t.Errorf("String output not stable:\n%s\nvs\n%s", generated, cfg2.String())
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := New()
	cfg.SaveDir = "/from/file"
	cfg.ApplyEnv(func(key string) (string, bool) {
		if key == "EASEL_SAVE_DIR" {
			return " /from/env ", true
		}
		return "", false
	})
	if cfg.SaveDir != "/from/env" {
		t.Errorf("Expected env override, got %q", cfg.SaveDir)
	}

	cfg.ApplyEnv(func(string) (string, bool) { return "", true })
	if cfg.SaveDir != "/from/env" {
		t.Errorf("Empty env value should not override, got %q", cfg.SaveDir)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("width = 320\n[style]\nbrush = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	l := NewLoader("v1.0.0", path)
	l.Getenv = func(string) (string, bool) { return "", false }
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("Expected override path %q, got %q", path, got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 320 || cfg.Style.Brush != 2 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoaderMissingFilesGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader("v1.0.0", filepath.Join(t.TempDir(), "missing.rc"))
	l.Getenv = func(key string) (string, bool) {
		if key == "EASEL_SAVE_DIR" {
			return "/env/dir", true
		}
		return "", false
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 1024 || cfg.SaveDir != "/env/dir" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoaderReportsPathOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rc")
	if err := os.WriteFile(path, []byte("width = -3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := NewLoader("v1.0.0", path).Load()
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("Expected error mentioning %q, got %v", path, err)
	}
}
