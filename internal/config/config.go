// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config drives the interactive shell and output.
type Config struct {
	Prompt    string
	Output    string // text|json|jsonl
	Color     bool
	Banner    bool
	ExitWords []string
	LogLevel  slog.Level
	LogFile   string
}

// Default mirrors the classic interactive tool.
func Default() Config {
	return Config{
		Prompt:    "Enter DNA sequence: ",
		Output:    "text",
		Color:     true,
		Banner:    true,
		ExitWords: []string{"quit", "exit"},
		LogLevel:  slog.LevelInfo,
	}
}

// yamlConfig is the on-disk shape. Pointers tell "absent" from "false".
type yamlConfig struct {
	Prompt    *string  `yaml:"prompt"`
	Output    string   `yaml:"output"`
	Color     *bool    `yaml:"color"`
	Banner    *bool    `yaml:"banner"`
	ExitWords []string `yaml:"exit_words"`
	Log       struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Load reads a YAML config file on top of Default. formats lists the
// accepted output formats.
func Load(path string, formats []string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
	}

	var dto yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}

	cfg, err := mapConfig(dto, formats)
	if err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

func mapConfig(dto yamlConfig, formats []string) (Config, error) {
	cfg := Default()
	if dto.Prompt != nil {
		cfg.Prompt = *dto.Prompt
	}
	if dto.Output != "" {
		cfg.Output = strings.ToLower(strings.TrimSpace(dto.Output))
	}
	if err := ValidateOutput(cfg.Output, formats); err != nil {
		return Config{}, fmt.Errorf("output: %w", err)
	}
	if dto.Color != nil {
		cfg.Color = *dto.Color
	}
	if dto.Banner != nil {
		cfg.Banner = *dto.Banner
	}
	if dto.ExitWords != nil {
		words, err := normalizeExitWords(dto.ExitWords)
		if err != nil {
			return Config{}, err
		}
		cfg.ExitWords = words
	}
	if dto.Log.Level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(dto.Log.Level)); err != nil {
			return Config{}, fmt.Errorf("log.level: %w", err)
		}
	}
	cfg.LogFile = strings.TrimSpace(dto.Log.File)
	return cfg, nil
}

func normalizeExitWords(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for i, w := range in {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return nil, fmt.Errorf("exit_words[%d]: must not be empty", i)
		}
		out = append(out, w)
	}
	return out, nil
}

// ValidateOutput rejects formats that have no writer.
func ValidateOutput(format string, formats []string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
}
