package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quocvuong92/neosh/internal/constants"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// ProjectConfigDir is the directory name for project-level config
const ProjectConfigDir = "." + constants.AppName

// FileConfig represents the configuration file structure
type FileConfig struct {
	Prompt      string   `yaml:"prompt,omitempty"`
	PromptColor *string  `yaml:"prompt_color,omitempty"` // "" disables colouring
	Suggestions []string `yaml:"suggestions,omitempty"`

	HistoryFile string `yaml:"history_file,omitempty"`
	ErrorLog    string `yaml:"error_log,omitempty"`

	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`

	Render bool `yaml:"render,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", ProjectConfigDir, ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constants.AppName, ConfigFileName))
	}

	return paths
}

// LoadConfigFile attempts to load configuration from the first existing file
func LoadConfigFile() (*FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}

	// No config file found, return empty config
	return &FileConfig{}, nil
}

func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config.
// File config has lower priority than environment variables and CLI flags,
// so only unset fields are filled.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if c.Prompt == "" {
		c.Prompt = fc.Prompt
	}
	if c.PromptColor == "" && !c.promptColorSet && fc.PromptColor != nil {
		c.PromptColor = *fc.PromptColor
		c.promptColorSet = true
	}
	if len(c.Suggestions) == 0 && len(fc.Suggestions) > 0 {
		c.Suggestions = fc.Suggestions
	}
	if c.HistoryFile == "" {
		c.HistoryFile = fc.HistoryFile
	}
	if c.ErrorLogFile == "" {
		c.ErrorLogFile = fc.ErrorLog
	}
	if c.LogLevel == "" {
		c.LogLevel = fc.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = fc.LogFormat
	}

	// Since we can't distinguish between "flag not set" and "flag set to false",
	// the file can only turn render on
	if fc.Render {
		c.Render = true
	}
}

// CreateDefaultConfigFile creates a default config file at the user config directory
func CreateDefaultConfigFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return writeDefaultConfig(filepath.Join(configDir, constants.AppName))
}

func writeDefaultConfig(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	defaultConfig := `# neosh configuration
# Location: ~/.config/neosh/config.yaml

# Prompt printed before each line
# prompt: "neo > "

# ANSI colour for the prompt ("" disables colouring)
# prompt_color: "2"

# Tab completion words; the first word starting with the typed prefix wins
# suggestions:
#   - help
#   - hello
#   - history
#   - halt
#   - hack

# Log files (default: ~/.local/share/neosh/)
# history_file: ~/.local/share/neosh/history.log
# error_log: ~/.local/share/neosh/error.log

# Diagnostic log settings
# log_level: info   # debug, info, warn, error, none
# log_format: text  # text or json

# Render help output as markdown
# render: false
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
