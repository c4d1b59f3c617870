package bumpversion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the file names looked up in the working directory
// when no configuration file is given explicitly.
var ConfigFileNames = []string{
	".bumpversion.yaml",
	".bumpversion.yml",
	".bumpversion.jsonc",
	".bumpversion.json",
}

// MilestonesConfig selects the repository whose milestones are queried.
type MilestonesConfig struct {
	APIURL string `yaml:"api_url" json:"api_url"`
	Owner  string `yaml:"owner" json:"owner"`
	Repo   string `yaml:"repo" json:"repo"`
}

// Config describes which files are rewritten and where milestones come from.
type Config struct {
	// VersionFile holds the current version. It must have a rule in Files;
	// its first template is used to read the version.
	VersionFile string           `yaml:"version_file" json:"version_file"`
	Changelog   string           `yaml:"changelog" json:"changelog"`
	Milestones  MilestonesConfig `yaml:"milestones" json:"milestones"`
	Files       PatternTable     `yaml:"files" json:"files"`
}

// DefaultConfig returns the built-in configuration for the darker
// repository layout.
func DefaultConfig() Config {
	const versionFile = "src/darker/version.py"
	return Config{
		VersionFile: versionFile,
		Changelog:   "CHANGES.rst",
		Milestones: MilestonesConfig{
			APIURL: DefaultAPIURL,
			Owner:  "akaihola",
			Repo:   "darker",
		},
		Files: PatternTable{
			{
				Path:     versionFile,
				Patterns: []string{`^__version__ *= *"{old_version->new_version}"`},
			},
			{
				Path: "action.yml",
				Patterns: []string{
					`^    description: \'Python Version specifier \(PEP440\) - e\.g\. "{old_version->new_version}"`,
					`^    default: "{old_version->new_version}"`,
					`^      uses: akaihola/darker/.github/actions/commit-range@{old_version->new_version}`,
				},
			},
			{
				Path: "README.rst",
				Patterns: []string{
					`^           rev: {old_version->new_version}`,
					`^       rev: {old_version->new_version}`,
					`^         - uses: akaihola/darker@{old_version->new_version}`,
					`^             version: "{old_version->new_version}"`,
					`label=release%20{new_version->next_version}`,
					`^\.\. \|next-milestone\| image:: https://img\.shields\.io/github/milestones/progress/akaihola/darker/{new_milestone->next_milestone}`,
					`^\.\. _next-milestone: https://github\.com/akaihola/darker/milestone/{new_milestone->next_milestone}`,
				},
			},
			{
				Path:     ".github/ISSUE_TEMPLATE/bug_report.md",
				Patterns: []string{`^ - Darker version \[e\.g\. {old_version->new_version}\]`},
			},
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// FindConfig returns the first of ConfigFileNames present in dir, or ""
// if there is none.
func FindConfig(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfig reads the configuration file at path. YAML files are decoded
// with yaml.v3, .json and .jsonc files may contain comments. An empty path
// returns DefaultConfig. Fields absent from the file keep their defaults;
// unknown fields are an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults(DefaultConfig())
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(d Config) {
	if c.VersionFile == "" {
		c.VersionFile = d.VersionFile
	}
	if c.Changelog == "" {
		c.Changelog = d.Changelog
	}
	if c.Milestones.APIURL == "" {
		c.Milestones.APIURL = d.Milestones.APIURL
	}
	if c.Milestones.Owner == "" {
		c.Milestones.Owner = d.Milestones.Owner
	}
	if c.Milestones.Repo == "" {
		c.Milestones.Repo = d.Milestones.Repo
	}
	if len(c.Files) == 0 {
		c.Files = d.Files
	}
}

// ValidateConfig checks that all config values are usable.
func ValidateConfig(cfg *Config) error {
	if cfg.VersionFile == "" {
		return ValidationError{Field: "version_file", Message: "must not be empty"}
	}
	if cfg.Changelog == "" {
		return ValidationError{Field: "changelog", Message: "must not be empty"}
	}
	if cfg.Milestones.APIURL == "" {
		return ValidationError{Field: "milestones.api_url", Message: "must not be empty"}
	}
	if cfg.Milestones.Owner == "" || cfg.Milestones.Repo == "" {
		return ValidationError{Field: "milestones", Message: "owner and repo are required"}
	}

	rule, ok := cfg.Files.Rule(cfg.VersionFile)
	if !ok || len(rule.Patterns) == 0 {
		return ValidationError{Field: "files", Message: fmt.Sprintf("no patterns for version file %s", cfg.VersionFile)}
	}

	for i, rule := range cfg.Files {
		if rule.Path == "" {
			return ValidationError{Field: fmt.Sprintf("files[%d].path", i), Message: "must not be empty"}
		}
		for j, raw := range rule.Patterns {
			if _, err := ParseTemplate(raw); err != nil {
				return ValidationError{
					Field:   fmt.Sprintf("files[%d].patterns[%d]", i, j),
					Message: err.Error(),
				}
			}
		}
	}
	return nil
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
