package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/transitiongate/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "transitiongate.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultEnterClass and DefaultExitClass are the default gate classes.
	DefaultEnterClass = "enter"
	DefaultExitClass  = "exit"

	// DefaultExitDurationMs is the default exit duration in milliseconds.
	DefaultExitDurationMs = 300

	// DefaultMetricsPath is where the preview server exposes metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultMetricsNamespace is the Prometheus namespace for gate metrics.
	DefaultMetricsNamespace = "transitiongate"
)

// Config represents the complete transitiongate.json configuration.
type Config struct {
	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Gate contains the default props of gates created by the CLI.
	Gate GateConfig `json:"gate,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Scenario is an optional scenario file the preview server plays on start.
	Scenario string `json:"scenario,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`
}

// GateConfig contains default gate props.
type GateConfig struct {
	// EnterClass is applied to entering content.
	EnterClass string `json:"enterClass,omitempty"`

	// ExitClass is applied to exiting content.
	ExitClass string `json:"exitClass,omitempty"`

	// ExitDurationMs is how long exiting content stays rendered.
	ExitDurationMs int `json:"exitDurationMs,omitempty"`

	// Wrap renders children inside a container div.
	Wrap bool `json:"wrap,omitempty"`

	// Strict rejects children that cannot carry a class.
	Strict bool `json:"strict,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes metrics on the preview server.
	Enabled bool `json:"enabled"`

	// Path is the metrics endpoint path.
	Path string `json:"path,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
		Gate: GateConfig{
			EnterClass:     DefaultEnterClass,
			ExitClass:      DefaultExitClass,
			ExitDurationMs: DefaultExitDurationMs,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: DefaultMetricsNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for transitiongate.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E201").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --config")
		}
		return nil, errors.New("E201").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E202").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads transitiongate.json from dir when present and returns
// the defaults otherwise.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
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
		return errors.New("E201").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E201").Wrap(err)
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
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E203").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Gate.ExitDurationMs < 0 {
		return errors.New("E203").
			WithDetailf("gate.exitDurationMs is %d; it must be zero or positive", c.Gate.ExitDurationMs)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E203").
			WithDetailf("metrics.path %q must start with /", c.Metrics.Path)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E203").
			WithDetailf("log.format %q is not supported", c.Log.Format).
			WithSuggestion(`Use "text" or "json"`)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.New("E203").
			WithDetailf("log.level %q is not a level", c.Log.Level).
			WithSuggestion("Use debug, info, warn or error")
	}
	return level, nil
}

// ExitDuration returns the default exit duration.
func (c *Config) ExitDuration() time.Duration {
	return time.Duration(c.Gate.ExitDurationMs) * time.Millisecond
}

// Address returns the address string for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the full URL for the preview server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ScenarioPath returns the scenario file path resolved against the config
// directory, or "" when none is configured.
func (c *Config) ScenarioPath() string {
	if c.Scenario == "" || filepath.IsAbs(c.Scenario) {
		return c.Scenario
	}
	return filepath.Join(c.Dir(), c.Scenario)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
