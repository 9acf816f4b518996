package config

import (
	"errors"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var formats = []string{"json", "jsonl", "text"}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"), formats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "seq> " {
		t.Fatalf("prompt = %q", cfg.Prompt)
	}
	if cfg.Output != "jsonl" {
		t.Fatalf("output = %q, want jsonl", cfg.Output)
	}
	if cfg.Color || cfg.Banner {
		t.Fatalf("color/banner should be off: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.ExitWords, []string{"bye", "q"}) {
		t.Fatalf("exit words = %q", cfg.ExitWords)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFile != "revcomp.log" {
		t.Fatalf("log = %v %q", cfg.LogLevel, cfg.LogFile)
	}
}

func TestLoadEmptyFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "empty.yaml"), formats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(path, formats)
	if !IsKind(err, KindNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad_output.yaml":  "xml",
		"unknown_key.yaml": "promt",
	}
	for file, mention := range cases {
		_, err := Load(filepath.Join("testdata", file), formats)
		if !IsKind(err, KindInvalidConfig) || !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: want invalid_config, got %v", file, err)
		}
		if !strings.Contains(err.Error(), mention) {
			t.Fatalf("%s: expected %q in error, got %v", file, mention, err)
		}
	}
}

func TestMapConfigRejectsBlankExitWord(t *testing.T) {
	_, err := mapConfig(yamlConfig{ExitWords: []string{"quit", "  "}}, formats)
	if err == nil || !strings.Contains(err.Error(), "exit_words[1]") {
		t.Fatalf("want exit_words[1] error, got %v", err)
	}
}

func TestMapConfigRejectsBadLevel(t *testing.T) {
	var dto yamlConfig
	dto.Log.Level = "loud"
	if _, err := mapConfig(dto, formats); err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("want log.level error, got %v", err)
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" || e.Unwrap() != nil {
		t.Fatalf("nil OpError misbehaves")
	}
}
