// Package config handles configuration loading for batch conversion jobs and the API server.
package config

import (
	"os"

	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values applied by Load when the file leaves a field empty.
const (
	DefaultDialect     = "legacy"
	DefaultFormat      = "json"
	DefaultKind        = "auto"
	DefaultConcurrency = 8
	DefaultAddr        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultMaxBody     = 1 << 20
	DefaultPreviewSize = 512
)

// Config represents the root configuration file structure.
type Config struct {
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Server   Server   `yaml:"server" json:"server"`
	Jobs     []Job    `yaml:"jobs" json:"jobs" validate:"dive"`
}

// Defaults are inherited by every job that does not set its own value.
type Defaults struct {
	Dialect     string `yaml:"dialect,omitempty" json:"dialect" validate:"omitempty,oneof=legacy geojson"`
	Format      string `yaml:"format,omitempty" json:"format" validate:"omitempty,oneof=json yaml bson wkt wkb"`
	Indent      string `yaml:"indent,omitempty" json:"indent,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty" json:"concurrency" validate:"gte=0"`
	PreviewSize int    `yaml:"preview_size,omitempty" json:"preview_size" validate:"gte=0"`
	Minify      bool   `yaml:"minify,omitempty" json:"minify,omitempty"`
}

// Server holds the HTTP API settings.
type Server struct {
	Addr    string `yaml:"addr,omitempty" json:"addr"`
	Port    int    `yaml:"port,omitempty" json:"port" validate:"gte=0,lte=65535"`
	MaxBody int64  `yaml:"max_body,omitempty" json:"max_body" validate:"gte=0"`
}

// Job describes one conversion: documents read from Input (or the inline Document),
// decoded as Kind and written to Output in Format.
type Job struct {
	// defining documents directly in config.yaml
	Document *yaml.Node `yaml:"document,omitempty" json:"-"`

	Name    string `yaml:"name" json:"name" validate:"required"`
	Input   string `yaml:"input,omitempty" json:"input,omitempty" validate:"required_without=Document"`
	Output  string `yaml:"output,omitempty" json:"output,omitempty"`
	Preview string `yaml:"preview,omitempty" json:"preview,omitempty"`
	Kind    string `yaml:"kind,omitempty" json:"kind" validate:"omitempty,oneof=auto point box circle sphere polygon geojson"`
	Dialect string `yaml:"dialect,omitempty" json:"dialect" validate:"omitempty,oneof=legacy geojson"`
	Format  string `yaml:"format,omitempty" json:"format" validate:"omitempty,oneof=json yaml bson wkt wkb"`
	Command string `yaml:"command,omitempty" json:"command,omitempty"`
}

// Load reads, defaults and validates the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return cfg, nil
}

// Parse decodes, defaults and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills empty settings and propagates Defaults into jobs.
func (c *Config) ApplyDefaults() {
	if c.Defaults.Dialect == "" {
		c.Defaults.Dialect = DefaultDialect
	}
	if c.Defaults.Format == "" {
		c.Defaults.Format = DefaultFormat
	}
	if c.Defaults.Concurrency <= 0 {
		c.Defaults.Concurrency = DefaultConcurrency
	}
	if c.Defaults.PreviewSize <= 0 {
		c.Defaults.PreviewSize = DefaultPreviewSize
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxBody <= 0 {
		c.Server.MaxBody = DefaultMaxBody
	}

	for i := range c.Jobs {
		job := &c.Jobs[i]
		if job.Kind == "" {
			job.Kind = DefaultKind
		}
		if job.Dialect == "" {
			job.Dialect = c.Defaults.Dialect
		}
		if job.Format == "" {
			job.Format = c.Defaults.Format
		}
	}
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := geo.Validator().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	seen := make(map[string]bool, len(c.Jobs))
	for _, job := range c.Jobs {
		if seen[job.Name] {
			return errors.Errorf("invalid configuration: duplicate job name %q", job.Name)
		}
		seen[job.Name] = true
	}
	return nil
}

// Select returns the jobs named in names, in the given order, skipping duplicates.
// Unknown names are returned separately. An empty names list selects every job.
func (c *Config) Select(names []string) (jobs []Job, missing []string) {
	if len(names) == 0 {
		return c.Jobs, nil
	}

	available := make(map[string]Job, len(c.Jobs))
	for _, job := range c.Jobs {
		available[job.Name] = job
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if job, ok := available[name]; ok {
			jobs = append(jobs, job)
		} else {
			missing = append(missing, name)
		}
	}
	return jobs, missing
}
