package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pulse-ui/pulse/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pulse.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"
)

// Config represents the complete pulse.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Session contains live session settings.
	Session SessionConfig `json:"session,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Assets contains uploaded asset storage configuration.
	Assets AssetsConfig `json:"assets,omitempty"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry tracing settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Debug enables verbose lifecycle logging.
	Debug bool `json:"debug,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// AllowedOrigins restricts WebSocket upgrades to these origins.
	// Empty means same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`

	// ReadTimeout is the connection read timeout (e.g., "30s").
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout is the connection write timeout (e.g., "30s").
	WriteTimeout string `json:"writeTimeout,omitempty"`
}

// SessionConfig contains live session settings.
type SessionConfig struct {
	// ResumeWindow is how long a disconnected session stays resumable
	// (e.g., "30s"). After it expires the session scope is closed.
	ResumeWindow string `json:"resumeWindow,omitempty"`

	// MaxSessions is the maximum number of concurrent sessions.
	// 0 means no limit.
	MaxSessions int `json:"maxSessions,omitempty"`
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/static/").
	Prefix string `json:"prefix,omitempty"`
}

// AssetsConfig contains uploaded asset storage configuration.
type AssetsConfig struct {
	// Bucket is the S3 bucket for asset storage. Empty disables S3 and
	// assets are stored under Dir.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region for the bucket.
	Region string `json:"region,omitempty"`

	// Prefix is the object key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Dir is the local directory for asset storage when S3 is not used.
	Dir string `json:"dir,omitempty"`

	// MaxUploadBytes is the largest accepted upload. Default: 10 MiB.
	MaxUploadBytes int64 `json:"maxUploadBytes,omitempty"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled exposes /metrics when true.
	Enabled bool `json:"enabled,omitempty"`

	// Path is the metrics endpoint path (default: "/metrics").
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry tracing settings.
type TracingConfig struct {
	// Enabled turns on span creation for sessions and events.
	Enabled bool `json:"enabled,omitempty"`

	// ServiceName is the service.name resource attribute.
	ServiceName string `json:"serviceName,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Port:         DefaultPort,
			Host:         DefaultHost,
			ReadTimeout:  "60s",
			WriteTimeout: "30s",
		},
		Session: SessionConfig{
			ResumeWindow: "30s",
			MaxSessions:  10000,
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static/",
		},
		Assets: AssetsConfig{
			Dir:            "data/assets",
			MaxUploadBytes: 10 << 20,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Tracing: TracingConfig{
			ServiceName: "pulse",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for pulse.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E301").
				WithDetail("No pulse.json found in " + filepath.Dir(path)).
				WithSuggestion("Create pulse.json in the project root, or pass --config")
		}
		return nil, errors.New("E300").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E300").
			WithDetail("Failed to parse pulse.json: " + err.Error()).
			WithSuggestion("Check that pulse.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
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
		return errors.New("E300").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E300").Wrap(err)
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

// Addr returns the host:port the server should listen on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + itoa(c.Server.Port)
}

// ResumeWindow parses the session resume window duration.
func (c *Config) ResumeWindow() time.Duration {
	d, err := time.ParseDuration(c.Session.ResumeWindow)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "60s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Session.ResumeWindow == "" {
		c.Session.ResumeWindow = "30s"
	}
	if c.Session.MaxSessions == 0 {
		c.Session.MaxSessions = 10000
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "public"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = "data/assets"
	}
	if c.Assets.MaxUploadBytes == 0 {
		c.Assets.MaxUploadBytes = 10 << 20
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "pulse"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E300").
			WithDetail("Port must be between 0 and 65535, got " + itoa(c.Server.Port))
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"session.resumeWindow", c.Session.ResumeWindow},
	} {
		if _, err := time.ParseDuration(field.value); err != nil {
			return errors.New("E300").
				WithDetail(field.name + " is not a valid duration: " + field.value)
		}
	}
	if c.Assets.Bucket != "" && c.Assets.Region == "" {
		return errors.New("E300").
			WithDetail("assets.region is required when assets.bucket is set")
	}
	return nil
}

// FindProjectRoot walks up from dir looking for pulse.json.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.New("E301").Wrap(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E301").
				WithSuggestion("Run from inside a project, or create pulse.json")
		}
		dir = parent
	}
}

// LoadFromCwd locates the project root above the working directory and
// loads its configuration.
func LoadFromCwd() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E301").Wrap(err)
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
