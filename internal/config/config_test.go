package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/quocvuong92/neosh/internal/constants"
	"github.com/quocvuong92/neosh/internal/logging"
)

// isolate points every config and data location at a fresh temp dir so the
// developer's own files never leak into a test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, env := range []string{EnvPrompt, EnvSuggestions, EnvHistoryFile, EnvErrorLog, EnvLogLevel, EnvLogFormat} {
		t.Setenv(env, "")
	}
	return dir
}

func TestValidate_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if cfg.PromptColor != DefaultPromptColor {
		t.Errorf("PromptColor = %q, want %q", cfg.PromptColor, DefaultPromptColor)
	}
	if !reflect.DeepEqual(cfg.Suggestions, constants.DefaultSuggestions) {
		t.Errorf("Suggestions = %v, want %v", cfg.Suggestions, constants.DefaultSuggestions)
	}
	wantHistory := filepath.Join(dir, "data", constants.AppName, constants.HistoryFileName)
	if cfg.HistoryFile != wantHistory {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, wantHistory)
	}
	wantErrLog := filepath.Join(dir, "data", constants.AppName, constants.ErrorLogFileName)
	if cfg.ErrorLogFile != wantErrLog {
		t.Errorf("ErrorLogFile = %q, want %q", cfg.ErrorLogFile, wantErrLog)
	}
	if cfg.LogLevelValue() != logging.LevelInfo {
		t.Errorf("LogLevelValue() = %v, want %v", cfg.LogLevelValue(), logging.LevelInfo)
	}
	if cfg.LogFormatValue() != logging.FormatText {
		t.Errorf("LogFormatValue() = %v, want %v", cfg.LogFormatValue(), logging.FormatText)
	}
}

func TestValidate_DefaultSuggestionsAreCopied(t *testing.T) {
	isolate(t)

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	cfg.Suggestions[0] = "mutated"

	if constants.DefaultSuggestions[0] != "help" {
		t.Error("mutating Config.Suggestions must not change the package defaults")
	}
}

func TestValidate_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvPrompt, "$ ")
	t.Setenv(EnvSuggestions, "git, go ,, grep")
	t.Setenv(EnvHistoryFile, filepath.Join(dir, "h.log"))
	t.Setenv(EnvErrorLog, filepath.Join(dir, "e.log"))
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Prompt != "$ " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "$ ")
	}
	want := []string{"git", "go", "grep"}
	if !reflect.DeepEqual(cfg.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", cfg.Suggestions, want)
	}
	if cfg.HistoryFile != filepath.Join(dir, "h.log") {
		t.Errorf("HistoryFile = %q", cfg.HistoryFile)
	}
	if cfg.ErrorLogFile != filepath.Join(dir, "e.log") {
		t.Errorf("ErrorLogFile = %q", cfg.ErrorLogFile)
	}
	if cfg.LogLevelValue() != logging.LevelWarn {
		t.Errorf("LogLevelValue() = %v, want %v", cfg.LogLevelValue(), logging.LevelWarn)
	}
	if cfg.LogFormatValue() != logging.FormatJSON {
		t.Errorf("LogFormatValue() = %v, want %v", cfg.LogFormatValue(), logging.FormatJSON)
	}
}

func TestValidate_FlagsBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPrompt, "env> ")

	cfg := NewConfig()
	cfg.Prompt = "flag> "
	cfg.Verbose = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Prompt != "flag> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "flag> ")
	}
	if cfg.LogLevelValue() != logging.LevelDebug {
		t.Errorf("Verbose should force debug level, got %v", cfg.LogLevelValue())
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogFormat, "xml")

	err := NewConfig().Validate()
	if !errors.Is(err, ErrInvalidLogFormat) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidLogFormat)
	}
}

func TestValidate_MissingExplicitConfigFile(t *testing.T) {
	dir := isolate(t)

	cfg := NewConfig()
	cfg.ConfigPath = filepath.Join(dir, "missing.yaml")
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when --config points to a missing file")
	}
}

func TestExpandHome(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		input string
		want  string
	}{
		{"~/logs/h.log", filepath.Join(dir, "logs", "h.log")},
		{"/abs/h.log", "/abs/h.log"},
		{"relative.log", "relative.log"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandHome(tt.input); got != tt.want {
				t.Errorf("expandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , , b ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := splitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
