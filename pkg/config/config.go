// Package config handles loading and managing surveyscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for surveyscope.
type Config struct {
	Survey  SurveyConfig  `yaml:"survey"`
	Output  OutputConfig  `yaml:"output"`
	Storage StorageConfig `yaml:"storage"`
	Results ResultsConfig `yaml:"results"`
	Log     LogConfig     `yaml:"log"`
}

// SurveyConfig controls which survey is taken and how it is presented.
type SurveyConfig struct {
	Path          string `yaml:"path"`
	OneBasedIndex bool   `yaml:"one_based_index"`
	Separator     string `yaml:"separator"`
}

// OutputConfig controls outcome rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or markdown
}

// StorageConfig selects the blob backend for submissions.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // local, s3, gcs or none
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // S3-compatible endpoint, e.g. MinIO
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// ResultsConfig selects the database recording scored outcomes.
type ResultsConfig struct {
	Driver string `yaml:"driver"` // sqlite, postgres or none
	DSN    string `yaml:"dsn"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Survey: SurveyConfig{
			Path:          filepath.Join(".", "resources", "quiz_01.json"),
			OneBasedIndex: true,
			Separator:     "-",
		},
		Output: OutputConfig{Format: "text"},
		Storage: StorageConfig{
			Backend: "local",
		},
		Results: ResultsConfig{
			Driver: "sqlite",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays SURVEYSCOPE_* environment variables onto cfg.
func (c *Config) ApplyEnv() error {
	str := map[string]*string{
		"SURVEYSCOPE_SURVEY_PATH":        &c.Survey.Path,
		"SURVEYSCOPE_SEPARATOR":          &c.Survey.Separator,
		"SURVEYSCOPE_OUTPUT_FORMAT":      &c.Output.Format,
		"SURVEYSCOPE_STORAGE_BACKEND":    &c.Storage.Backend,
		"SURVEYSCOPE_STORAGE_LOCAL_PATH": &c.Storage.LocalPath,
		"SURVEYSCOPE_STORAGE_BUCKET":     &c.Storage.Bucket,
		"SURVEYSCOPE_STORAGE_REGION":     &c.Storage.Region,
		"SURVEYSCOPE_STORAGE_ENDPOINT":   &c.Storage.Endpoint,
		"SURVEYSCOPE_STORAGE_ACCESS_KEY": &c.Storage.AccessKey,
		"SURVEYSCOPE_STORAGE_SECRET_KEY": &c.Storage.SecretKey,
		"SURVEYSCOPE_RESULTS_DRIVER":     &c.Results.Driver,
		"SURVEYSCOPE_RESULTS_DSN":        &c.Results.DSN,
		"SURVEYSCOPE_LOG_LEVEL":          &c.Log.Level,
		"SURVEYSCOPE_LOG_FORMAT":         &c.Log.Format,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("SURVEYSCOPE_ONE_BASED_INDEX"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("SURVEYSCOPE_ONE_BASED_INDEX: %w", err)
		}
		c.Survey.OneBasedIndex = b
	}
	return nil
}

// FindConfigFile looks for .surveyscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".surveyscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns ~/.cache/surveyscope, the home of everything the CLI
// writes by default.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "surveyscope")
}

// SubmissionDir returns the local submission storage directory. An
// explicit storage.local_path wins.
func SubmissionDir(cfg *Config) string {
	if cfg != nil && cfg.Storage.LocalPath != "" {
		return cfg.Storage.LocalPath
	}
	return filepath.Join(CacheDir(), "submissions")
}

// ResultsDBPath returns the default sqlite results database file.
func ResultsDBPath() string {
	return filepath.Join(CacheDir(), "results.db")
}

// ResultsDSN returns the configured DSN, falling back to the default
// sqlite file for the sqlite driver.
func ResultsDSN(cfg *Config) string {
	if cfg.Results.DSN != "" {
		return cfg.Results.DSN
	}
	if cfg.Results.Driver == "sqlite" {
		return ResultsDBPath()
	}
	return ""
}
