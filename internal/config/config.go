package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quocvuong92/neosh/internal/constants"
	"github.com/quocvuong92/neosh/internal/logging"
)

// Environment variable names
const (
	EnvPrompt      = "NEOSH_PROMPT"
	EnvSuggestions = "NEOSH_SUGGESTIONS"
	EnvHistoryFile = "NEOSH_HISTORY_FILE"
	EnvErrorLog    = "NEOSH_ERROR_LOG"
	EnvLogLevel    = "NEOSH_LOG_LEVEL"
	EnvLogFormat   = "NEOSH_LOG_FORMAT"
)

// Defaults - re-exported from constants for convenience
const (
	DefaultPrompt      = constants.DefaultPrompt
	DefaultPromptColor = constants.DefaultPromptColor
	DefaultLogLevel    = constants.DefaultLogLevel
	DefaultLogFormat   = constants.DefaultLogFormat
)

// Errors
var (
	ErrEmptyPrompt      = errors.New("prompt must not be empty")
	ErrInvalidLogFormat = errors.New("invalid log format. Use 'text' or 'json'")
	ErrNoLogPath        = errors.New("log file path could not be determined. Set NEOSH_HISTORY_FILE and NEOSH_ERROR_LOG")
)

// Config holds the shell configuration
type Config struct {
	// Prompt printed before each read cycle
	Prompt      string
	PromptColor string // ANSI colour code; empty disables colouring

	// Completion words, in match order
	Suggestions []string

	// Persisted logs
	HistoryFile  string
	ErrorLogFile string

	// Diagnostic log
	LogLevel  string
	LogFormat string

	// ConfigPath overrides config file discovery when set
	ConfigPath string

	promptColorSet bool

	// Flags
	Verbose bool
	Render  bool // Render help as markdown
}

// NewConfig creates a new Config with defaults
func NewConfig() *Config {
	return &Config{}
}

// Validate fills unset values from the config file, the environment and the
// defaults (in increasing order of priority: defaults < file < env < flags),
// then checks the result.
func (c *Config) Validate() error {
	fileConfig := &FileConfig{}
	if c.ConfigPath != "" {
		fc, err := loadConfigFromPath(c.ConfigPath)
		if err != nil {
			return err
		}
		fileConfig = fc
	} else if fc, err := LoadConfigFile(); err == nil {
		// Errors loading a discovered config file are ignored - env vars and flags take precedence
		fileConfig = fc
	}

	c.applyEnv()
	c.ApplyFileConfig(fileConfig)
	c.applyDefaults()

	if c.Prompt == "" {
		return ErrEmptyPrompt
	}
	if _, ok := logging.ParseFormat(c.LogFormat); !ok {
		return ErrInvalidLogFormat
	}
	if c.HistoryFile == "" || c.ErrorLogFile == "" {
		return ErrNoLogPath
	}
	return nil
}

func (c *Config) applyEnv() {
	if c.Prompt == "" {
		c.Prompt = os.Getenv(EnvPrompt)
	}
	if len(c.Suggestions) == 0 {
		c.Suggestions = splitList(os.Getenv(EnvSuggestions))
	}
	if c.HistoryFile == "" {
		c.HistoryFile = strings.TrimSpace(os.Getenv(EnvHistoryFile))
	}
	if c.ErrorLogFile == "" {
		c.ErrorLogFile = strings.TrimSpace(os.Getenv(EnvErrorLog))
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv(EnvLogLevel)
	}
	if c.LogFormat == "" {
		c.LogFormat = os.Getenv(EnvLogFormat)
	}
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if !c.promptColorSet && c.PromptColor == "" {
		c.PromptColor = DefaultPromptColor
	}
	if len(c.Suggestions) == 0 {
		c.Suggestions = append([]string(nil), constants.DefaultSuggestions...)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	c.HistoryFile = expandHome(c.HistoryFile)
	c.ErrorLogFile = expandHome(c.ErrorLogFile)
	if c.HistoryFile == "" || c.ErrorLogFile == "" {
		dataDir, err := DataDir()
		if err != nil {
			return
		}
		if c.HistoryFile == "" {
			c.HistoryFile = filepath.Join(dataDir, constants.HistoryFileName)
		}
		if c.ErrorLogFile == "" {
			c.ErrorLogFile = filepath.Join(dataDir, constants.ErrorLogFileName)
		}
	}
}

// DataDir returns the directory holding the log files.
// Uses XDG_DATA_HOME or defaults to ~/.local/share.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, constants.AppName), nil
}

// LogLevelValue returns the parsed diagnostic log level
func (c *Config) LogLevelValue() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// LogFormatValue returns the parsed diagnostic log format
func (c *Config) LogFormatValue() logging.Format {
	f, _ := logging.ParseFormat(c.LogFormat)
	return f
}

// String returns a one-line summary used in the startup log entry
func (c *Config) String() string {
	return fmt.Sprintf("prompt=%q history=%s errors=%s suggestions=%d",
		c.Prompt, c.HistoryFile, c.ErrorLogFile, len(c.Suggestions))
}

// expandHome replaces a leading "~/" with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
