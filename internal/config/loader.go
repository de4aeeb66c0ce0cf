package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file in a project root.
const ConfigFileName = "config_paths.yaml"

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Loader handles configuration loading and saving for one project root.
type Loader struct {
	rootDir    string
	configPath string
}

// NewLoader creates a loader for the given project root directory.
func NewLoader(rootDir string) *Loader {
	return &Loader{
		rootDir:    rootDir,
		configPath: filepath.Join(rootDir, ConfigFileName),
	}
}

// NewLoaderWithPath creates a loader with a custom config file path.
func NewLoaderWithPath(configPath string) *Loader {
	return &Loader{
		rootDir:    filepath.Dir(configPath),
		configPath: configPath,
	}
}

// ConfigPath returns the configuration file path.
func (l *Loader) ConfigPath() string {
	return l.configPath
}

// RootDir returns the project root directory.
func (l *Loader) RootDir() string {
	return l.rootDir
}

// Load reads and parses the configuration file. Missing files yield the
// default configuration.
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the file.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(l.rootDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Exists reports whether the configuration file exists.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.configPath)
	return err == nil
}

// Init creates a default configuration file.
func (l *Loader) Init() error {
	if l.Exists() {
		return fmt.Errorf("config file already exists: %s", l.configPath)
	}
	return l.Save(DefaultConfig())
}

// Resolve turns a config-relative path into an absolute one under the
// project root. Absolute paths pass through unchanged.
func (l *Loader) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.rootDir, path)
}

// expandEnvVars replaces ${VAR_NAME} with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
