// Package config loads the optional gemmakit.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fredrikaverpil/gemmakit/gk"
	"github.com/fredrikaverpil/gemmakit/install"
	"github.com/fredrikaverpil/gemmakit/mdfix"
)

const (
	// FileName is looked up in the working directory when no path is given.
	FileName = "gemmakit.yaml"
	// EnvConfig points at a config file and takes precedence over FileName.
	EnvConfig = "GEMMAKIT_CONFIG"
)

// Config models gemmakit.yaml. Every field is optional.
type Config struct {
	Log      gk.LogConfig   `yaml:"log"`
	Install  InstallConfig  `yaml:"install"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// InstallConfig overrides the installer defaults.
type InstallConfig struct {
	Python      []string       `yaml:"python"`
	EnvFile     string         `yaml:"env_file"`
	EnvTemplate string         `yaml:"env_template"`
	Steps       []install.Step `yaml:"steps"`
}

// MarkdownConfig overrides the markdown fixer defaults.
type MarkdownConfig struct {
	Files []string `yaml:"files"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if len(c.Install.Python) == 0 {
		c.Install.Python = install.DefaultPythonCandidates
	}
	if c.Install.EnvFile == "" {
		c.Install.EnvFile = install.DefaultEnvFile
	}
	if c.Install.EnvTemplate == "" {
		c.Install.EnvTemplate = install.DefaultEnvTemplate
	}
	if len(c.Install.Steps) == 0 {
		c.Install.Steps = install.DefaultSteps
	}
	if len(c.Markdown.Files) == 0 {
		c.Markdown.Files = mdfix.DefaultFiles
	}
	return c
}

// Validate reports steps that cannot be run.
func (c Config) Validate() error {
	var errs []error
	for i, step := range c.Install.Steps {
		if step.Command == "" {
			errs = append(errs, fmt.Errorf("install.steps[%d]: command is required", i))
		}
		if step.Description == "" {
			errs = append(errs, fmt.Errorf("install.steps[%d]: description is required", i))
		}
	}
	return errors.Join(errs...)
}

// InstallOptions converts the install section into installer options.
func (c Config) InstallOptions() install.Options {
	return install.Options{
		Steps:       c.Install.Steps,
		Python:      c.Install.Python,
		EnvFile:     c.Install.EnvFile,
		EnvTemplate: c.Install.EnvTemplate,
	}
}

// MarkdownOptions converts the markdown section into fixer options.
func (c Config) MarkdownOptions() mdfix.Options {
	return mdfix.Options{Files: c.Markdown.Files}
}

// Load reads the config at path. An empty path means $GEMMAKIT_CONFIG, then
// gemmakit.yaml in dir. A missing default file yields Default(); a missing
// explicit file is an error.
func Load(dir, path string) (Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = filepath.Join(dir, FileName)
		explicit = false
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}
