package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrOverlappingDirs = errors.New("output directory overlaps a source directory")
)

// DefaultName is looked up in the working directory when no config is named.
const DefaultName = "md2site"

// Field limits.
const (
	MaxPathLength         = 4096
	MaxTemplateNameLength = 100
	MaxWorkers            = 64
)

// Default directory layout.
const (
	DefaultContentDir = "content"
	DefaultOutputDir  = "public"
	DefaultStaticDir  = "static"
)

// Config holds all configuration for site generation.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
	Static   StaticConfig   `yaml:"static"`
	Template TemplateConfig `yaml:"template"`
	Build    BuildConfig    `yaml:"build"`
}

// ContentConfig locates the markdown sources.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig locates the generated site.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig locates files copied verbatim into the output (css, images).
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// TemplateConfig selects the page template.
type TemplateConfig struct {
	Name string `yaml:"name"` // template name, or a file path if it contains a separator
	Path string `yaml:"path"` // custom asset directory (empty = embedded only)
}

// BuildConfig controls generation.
type BuildConfig struct {
	Workers      int  `yaml:"workers"` // 0 = GOMAXPROCS
	Minify       bool `yaml:"minify"`
	Sanitize     bool `yaml:"sanitize"`
	RewriteLinks bool `yaml:"rewriteLinks"`
	Clean        bool `yaml:"clean"` // remove output.dir before building
}

// DefaultConfig returns the conventional content/static/public layout with
// every optional build step disabled.
func DefaultConfig() *Config {
	return &Config{
		Content:  ContentConfig{Dir: DefaultContentDir},
		Output:   OutputConfig{Dir: DefaultOutputDir},
		Static:   StaticConfig{Dir: DefaultStaticDir},
		Template: TemplateConfig{Name: assets.DefaultTemplateName},
	}
}

// applyDefaults fills directory and template fields left empty in a file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Content.Dir == "" {
		c.Content.Dir = def.Content.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Static.Dir == "" {
		c.Static.Dir = def.Static.Dir
	}
	if c.Template.Name == "" {
		c.Template.Name = def.Template.Name
	}
}

// Validate checks lengths, ranges and directory overlap.
// Called by LoadConfig; also usable on a Config built by hand.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"content.dir", c.Content.Dir},
		{"output.dir", c.Output.Dir},
		{"static.dir", c.Static.Dir},
		{"template.path", c.Template.Path},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if fileutil.IsFilePath(c.Template.Name) {
		if err := validateFieldLength("template.name", c.Template.Name, MaxPathLength); err != nil {
			return err
		}
	} else if c.Template.Name != "" {
		if err := validateFieldLength("template.name", c.Template.Name, MaxTemplateNameLength); err != nil {
			return err
		}
		if err := assets.ValidateAssetName(c.Template.Name); err != nil {
			return fmt.Errorf("%w: template.name: %v", ErrInvalidValue, err)
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	if c.Output.Dir != "" {
		for _, src := range []struct{ field, dir string }{
			{"content.dir", c.Content.Dir},
			{"static.dir", c.Static.Dir},
		} {
			if src.dir != "" && sameDir(c.Output.Dir, src.dir) {
				return fmt.Errorf("%w: output.dir and %s are both %q", ErrOverlappingDirs, src.field, src.dir)
			}
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func sameDir(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; otherwise it is a
// name searched in standard locations. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes cfg as YAML, e.g. to scaffold a config file.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// resolveConfigPath searches for <name>.yaml then <name>.yml, first in the
// current directory, then in the user config directory under go-md2site/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, "go-md2site"))
	}

	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
