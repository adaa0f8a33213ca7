package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/easel/internal/style"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")))
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "style":
			err = setStyleField(&cfg.Style, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d: error in [%s] section: %w", lineNo, section, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	cfg.Style = style.Normalize(cfg.Style)
	return cfg, nil
}

func setRootField(cfg *Config, key, value string) error {
	var err error
	switch key {
	case "save_dir":
		cfg.SaveDir = value
	case "file_name":
		cfg.FileName = value
	case "width":
		cfg.Width, err = parsePositive(key, value)
	case "height":
		cfg.Height, err = parsePositive(key, value)
	case "history_limit":
		cfg.HistoryLimit, err = parseInt(key, value)
	case "jpeg_quality":
		cfg.JPEGQuality, err = parseInt(key, value)
		if err == nil && (cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100) {
			err = fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", cfg.JPEGQuality)
		}
	}
	return err
}

func setStyleField(s *style.Style, key, value string) error {
	var err error
	switch key {
	case "stroke":
		s.Stroke, err = style.ParseColor(value)
	case "fill":
		s.Fill, err = style.ParseColor(value)
	case "brush":
		s.Brush, err = parsePositive(key, value)
	case "sides":
		s.Sides, err = parseInt(key, value)
	case "fill_mode":
		s.FillMode, err = parseBool(key, value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for key %s: %w", key, err)
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch key {
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	return n, nil
}

func parsePositive(key, value string) (int, error) {
	n, err := parseInt(key, value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
