package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "termkit.json"

	// EnvPrefix prefixes environment overrides, e.g. TERMKIT_REGISTRY_URL.
	EnvPrefix = "TERMKIT"

	// DefaultComponentsPath is where components are installed.
	DefaultComponentsPath = "internal/tui"

	// DefaultRegion is used for S3 registries without an explicit region.
	DefaultRegion = "us-east-1"
)

// Registry sources.
const (
	SourceEmbedded = "embedded"
	SourceHTTP     = "http"
	SourceS3       = "s3"
)

// Config represents termkit.json.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" mapstructure:"name"`

	// Paths locates the components directory and the ledger.
	Paths PathsConfig `json:"paths" mapstructure:"paths"`

	// Registry selects where components come from.
	Registry RegistryConfig `json:"registry" mapstructure:"registry"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PathsConfig holds project-relative paths.
type PathsConfig struct {
	// Components is the directory components are installed into, one
	// subdirectory per component.
	Components string `json:"components,omitempty" mapstructure:"components"`

	// Ledger is the installation ledger file.
	Ledger string `json:"ledger,omitempty" mapstructure:"ledger"`
}

// RegistryConfig selects and locates the component registry.
type RegistryConfig struct {
	// Source is one of "embedded", "http" or "s3".
	Source string `json:"source,omitempty" mapstructure:"source"`

	// URL is the base URL of an HTTP registry.
	URL string `json:"url,omitempty" mapstructure:"url"`

	// Bucket, Prefix, Region and Endpoint locate an S3 registry. Endpoint
	// selects an S3-compatible service.
	Bucket   string `json:"bucket,omitempty" mapstructure:"bucket"`
	Prefix   string `json:"prefix,omitempty" mapstructure:"prefix"`
	Region   string `json:"region,omitempty" mapstructure:"region"`
	Endpoint string `json:"endpoint,omitempty" mapstructure:"endpoint"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Paths: PathsConfig{
			Components: DefaultComponentsPath,
			Ledger:     ledger.DefaultPath,
		},
		Registry: RegistryConfig{
			Source: SourceEmbedded,
		},
	}
}

// newViper returns a viper instance with every key defaulted, so that
// environment overrides apply even to keys absent from the file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", "")
	v.SetDefault("paths.components", DefaultComponentsPath)
	v.SetDefault("paths.ledger", ledger.DefaultPath)
	v.SetDefault("registry.source", SourceEmbedded)
	v.SetDefault("registry.url", "")
	v.SetDefault("registry.bucket", "")
	v.SetDefault("registry.prefix", "")
	v.SetDefault("registry.region", "")
	v.SetDefault("registry.endpoint", "")
	return v
}

// Load reads termkit.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path and applies
// TERMKIT_* environment overrides.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'termkit init' to create one")
		}
		return nil, errors.New("E100").
			WithDetail("Failed to parse " + path).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
			Wrap(err)
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E100").
			WithDetail("Invalid configuration in " + path).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E100").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E140").
			WithDetail("Could not write " + path).
			Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Paths.Components == "" {
		c.Paths.Components = DefaultComponentsPath
	}
	if c.Paths.Ledger == "" {
		c.Paths.Ledger = ledger.DefaultPath
	}
	if c.Registry.Source == "" {
		c.Registry.Source = SourceEmbedded
	}
	if c.Registry.Source == SourceS3 && c.Registry.Region == "" {
		c.Registry.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for key, p := range map[string]string{
		"paths.components": c.Paths.Components,
		"paths.ledger":     c.Paths.Ledger,
	} {
		if filepath.IsAbs(p) || p == ".." || strings.HasPrefix(filepath.ToSlash(p), "../") {
			return errors.New("E100").
				WithDetailf("%s must be a path inside the project, got %q", key, p)
		}
	}

	switch c.Registry.Source {
	case SourceEmbedded:
	case SourceHTTP:
		if c.Registry.URL == "" {
			return errors.New("E100").
				WithDetail("registry.url is required when registry.source is \"http\"")
		}
	case SourceS3:
		if c.Registry.Bucket == "" {
			return errors.New("E100").
				WithDetail("registry.bucket is required when registry.source is \"s3\"")
		}
	default:
		return errors.New("E100").
			WithDetailf("Unknown registry.source %q", c.Registry.Source).
			WithSuggestion("Use \"embedded\", \"http\" or \"s3\"")
	}
	return nil
}

// ComponentsPath returns the components directory relative to the project
// root, slash-separated.
func (c *Config) ComponentsPath() string {
	return filepath.ToSlash(filepath.Clean(c.Paths.Components))
}

// LedgerPath returns the ledger file relative to the project root,
// slash-separated.
func (c *Config) LedgerPath() string {
	return filepath.ToSlash(filepath.Clean(c.Paths.Ledger))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing termkit.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'termkit init' in your project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
