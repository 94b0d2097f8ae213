package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the per-request timeout in seconds applied when a
// client section does not set one.
const DefaultTimeout = 30

// Config is the top-level configuration for terraforge.
type Config struct {
	Atlantis AtlantisConfig `yaml:"atlantis"`
	GitHub   GitHubConfig   `yaml:"github"`
}

// AtlantisConfig describes the connection to an Atlantis server. Exactly one
// of Token or Username+Password must be set.
type AtlantisConfig struct {
	URL                string `yaml:"url"`
	Token              string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Timeout            int    `yaml:"timeout"` // Seconds, default 30
}

// GitHubConfig describes the connection to GitHub or a GitHub Enterprise
// instance. An empty BaseURL targets the public github.com API.
type GitHubConfig struct {
	Token              string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	BaseURL            string `yaml:"base_url"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Timeout            int    `yaml:"timeout"` // Seconds, default 30
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// and resolving token file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	// Resolve credentials (env vars and file paths)
	cfg.Atlantis.Token = resolveToken(cfg.Atlantis.Token)
	cfg.Atlantis.Password = resolveToken(cfg.Atlantis.Password)
	cfg.GitHub.Token = resolveToken(cfg.GitHub.Token)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".terraforge.yaml",
		".terraforge.yml",
		"terraforge.yaml",
		"terraforge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks the invariants the clients enforce at construction, so a
// broken file fails at load time instead of on the first call.
func validate(cfg *Config) error {
	if err := cfg.Atlantis.Validate(); err != nil {
		return err
	}
	return cfg.GitHub.Validate()
}

// Validate checks the Atlantis connection settings: the URL is required and
// exactly one authentication mechanism must be configured.
func (c *AtlantisConfig) Validate() error {
	if c.URL == "" {
		return errors.New("atlantis.url is required")
	}

	hasToken := c.Token != ""
	hasBasic := c.Username != "" || c.Password != ""

	switch {
	case hasToken && hasBasic:
		return errors.New("atlantis.token and atlantis.username/password are mutually exclusive")
	case !hasToken && !hasBasic:
		return errors.New("either atlantis.token or atlantis.username/password must be set")
	case hasBasic && (c.Username == "" || c.Password == ""):
		return errors.New("atlantis.username and atlantis.password must be set together")
	}

	return nil
}

// Validate checks the GitHub connection settings.
func (c *GitHubConfig) Validate() error {
	if c.Token == "" {
		return errors.New("github.token is required")
	}
	return nil
}
