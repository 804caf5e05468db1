package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "velum.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export output directory.
	DefaultOutput = "dist"
)

// Config represents the complete velum.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Serve contains development server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Render contains rendering configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains development server settings.
type ServeConfig struct {
	// Port is the port to run the server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Metrics exposes /metrics and enables Prometheus instrumentation.
	Metrics bool `json:"metrics,omitempty"`

	// Tracing enables OpenTelemetry spans for every render.
	Tracing bool `json:"tracing,omitempty"`

	// HotReload enables the /livereload endpoint in development.
	HotReload bool `json:"hotReload,omitempty"`
}

// RenderConfig contains rendering settings.
type RenderConfig struct {
	// Mode is "compact" or "pretty" (default: "compact").
	Mode string `json:"mode,omitempty"`

	// Indent is the indentation unit used in pretty mode.
	Indent string `json:"indent,omitempty"`

	// ChunkSize is the streaming chunk threshold in bytes.
	ChunkSize int `json:"chunkSize,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Output is the output directory for static exports.
	Output string `json:"output,omitempty"`

	// S3Bucket, when set, makes export upload to S3 instead of disk.
	S3Bucket string `json:"s3Bucket,omitempty"`

	// S3Prefix is the key prefix for uploaded files.
	S3Prefix string `json:"s3Prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Serve: ServeConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
		},
		Render: RenderConfig{
			Mode: "compact",
		},
		Export: ExportConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for velum.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E150").
				WithDetail("No velum.json found in " + filepath.Dir(path)).
				WithSuggestion("Create velum.json in your project root")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse velum.json: " + err.Error()).
			WithSuggestion("Check that velum.json is valid JSON")
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
		return errors.New("E120").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// applyDefaults fills zero-valued fields after unmarshaling, so a partial
// velum.json behaves like New() plus the overridden keys.
func (c *Config) applyDefaults() {
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Render.Mode == "" {
		c.Render.Mode = "compact"
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return errors.New("E122").
			WithDetailf("port %d is out of range (1-65535)", c.Serve.Port)
	}
	switch c.Render.Mode {
	case "compact", "pretty":
	default:
		return errors.New("E121").
			WithDetailf("render mode %q is not one of \"compact\", \"pretty\"", c.Render.Mode)
	}
	if c.Render.ChunkSize < 0 {
		return errors.New("E121").
			WithDetailf("chunkSize %d must not be negative", c.Render.ChunkSize)
	}
	return nil
}

// Address returns the host:port pair the server should listen on.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// RenderConfig converts the JSON render settings into a render.Config.
func (c *Config) RenderConfig() (render.Config, error) {
	mode, err := render.ParseMode(c.Render.Mode)
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		Mode:      mode,
		Indent:    c.Render.Indent,
		ChunkSize: c.Render.ChunkSize,
	}, nil
}
