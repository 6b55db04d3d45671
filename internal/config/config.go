package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vango-dev/routegen/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "routegen.json"

	// DefaultRoutesFile is the default route descriptor file.
	DefaultRoutesFile = "routes.json"

	// DefaultSrc is the default routes source root.
	DefaultSrc = "routes"

	// DefaultOutput is the default manifest directory.
	DefaultOutput = "app/manifest"

	// DefaultPort is the default live-reload port.
	DefaultPort = 10000

	// DefaultHost is the default dev server host.
	DefaultHost = "localhost"

	// DefaultReloadClient is the default reload client module specifier.
	DefaultReloadClient = "routegen/reload-client"
)

// Supported publish backends.
const (
	BackendS3    = "s3"
	BackendMinIO = "minio"
)

// Config represents the complete routegen.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Routes is the route descriptor file (JSON or YAML).
	Routes string `json:"routes,omitempty"`

	// Src is the routes source root that descriptor files are relative to.
	Src string `json:"src,omitempty"`

	// Output is the manifest directory.
	Output string `json:"output,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish configures mirroring manifests to object storage.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the live-reload port baked into the client manifest and
	// served by the dev server.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// ReloadClient is the reload client module specifier.
	ReloadClient string `json:"reloadClient,omitempty"`

	// Poll is the watcher polling interval (e.g., "100ms").
	Poll string `json:"poll,omitempty"`
}

// PublishConfig configures the object storage mirror.
type PublishConfig struct {
	// Backend is "s3" or "minio". Empty disables publishing.
	Backend string `json:"backend,omitempty"`

	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint is the S3-compatible endpoint (required for minio).
	Endpoint string `json:"endpoint,omitempty"`

	// AccessKey and SecretKey are static credentials. Prefer the
	// environment for these.
	AccessKey string `json:"accessKey,omitempty"`
	SecretKey string `json:"secretKey,omitempty"`

	// UseSSL enables TLS for the minio backend.
	UseSSL bool `json:"useSSL,omitempty"`
}

// PollInterval returns override when positive, otherwise Poll parsed as a
// duration. Unparseable values fall back to 100ms.
func (d DevConfig) PollInterval(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	if v, err := time.ParseDuration(d.Poll); err == nil && v > 0 {
		return v
	}
	return 100 * time.Millisecond
}

// Enabled reports whether publishing is configured.
func (p PublishConfig) Enabled() bool {
	return p.Backend != ""
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Routes: DefaultRoutesFile,
		Src:    DefaultSrc,
		Output: DefaultOutput,
		Dev: DevConfig{
			Port:         DefaultPort,
			Host:         DefaultHost,
			ReloadClient: DefaultReloadClient,
			Poll:         "100ms",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for routegen.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E103").
				WithFile(path).
				WithSuggestion("Run 'routegen init' to create routegen.json")
		}
		return nil, errors.New("E100").WithFile(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E100").
			WithFile(path).
			WithSuggestion("Check that routegen.json is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E100").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E100").WithFile(path).Wrap(err)
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
	if c.Routes == "" {
		c.Routes = DefaultRoutesFile
	}
	if c.Src == "" {
		c.Src = DefaultSrc
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.ReloadClient == "" {
		c.Dev.ReloadClient = DefaultReloadClient
	}
	if c.Dev.Poll == "" {
		c.Dev.Poll = "100ms"
	}
	if c.Publish.Backend == BackendS3 && c.Publish.Region == "" {
		c.Publish.Region = "us-east-1"
	}
}

// LoadEnv loads a .env file next to routegen.json (if present) into the
// process environment and applies ROUTEGEN_* overrides.
func (c *Config) LoadEnv() error {
	envFile := filepath.Join(c.Dir(), ".env")
	if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.New("E100").
			WithFile(envFile).
			WithDetail("The .env file could not be parsed.").
			Wrap(err)
	}
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies ROUTEGEN_* overrides read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("ROUTEGEN_ROUTES", &c.Routes)
	str("ROUTEGEN_SRC", &c.Src)
	str("ROUTEGEN_OUTPUT", &c.Output)
	str("ROUTEGEN_DEV_HOST", &c.Dev.Host)
	str("ROUTEGEN_RELOAD_CLIENT", &c.Dev.ReloadClient)
	str("ROUTEGEN_PUBLISH_BACKEND", &c.Publish.Backend)
	str("ROUTEGEN_PUBLISH_BUCKET", &c.Publish.Bucket)
	str("ROUTEGEN_PUBLISH_PREFIX", &c.Publish.Prefix)
	str("ROUTEGEN_PUBLISH_REGION", &c.Publish.Region)
	str("ROUTEGEN_PUBLISH_ENDPOINT", &c.Publish.Endpoint)
	str("ROUTEGEN_PUBLISH_ACCESS_KEY", &c.Publish.AccessKey)
	str("ROUTEGEN_PUBLISH_SECRET_KEY", &c.Publish.SecretKey)

	if v, ok := lookup("ROUTEGEN_DEV_PORT"); ok && strings.TrimSpace(v) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.New("E102").
				WithDetail("ROUTEGEN_DEV_PORT must be a number, got " + strconv.Quote(v)).
				Wrap(err)
		}
		c.Dev.Port = port
	}

	if v, ok := lookup("ROUTEGEN_PUBLISH_USE_SSL"); ok && strings.TrimSpace(v) != "" {
		useSSL, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.New("E351").
				WithDetail("ROUTEGEN_PUBLISH_USE_SSL must be a boolean, got " + strconv.Quote(v)).
				Wrap(err)
		}
		c.Publish.UseSSL = useSSL
	}

	c.applyDefaults()
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port must be between 1 and 65535, got " + strconv.Itoa(c.Dev.Port))
	}
	if strings.TrimSpace(c.Src) == "" {
		return errors.New("E101").WithDetail("src must name the routes directory")
	}
	if strings.TrimSpace(c.Routes) == "" {
		return errors.New("E101").WithDetail("routes must name the route descriptor file")
	}

	if !c.Publish.Enabled() {
		return nil
	}
	switch c.Publish.Backend {
	case BackendS3:
	case BackendMinIO:
		if c.Publish.Endpoint == "" {
			return errors.New("E351").WithDetail("publish.endpoint is required for the minio backend")
		}
	default:
		return errors.New("E351").
			WithDetail("Unknown publish backend " + strconv.Quote(c.Publish.Backend)).
			WithSuggestion("Use \"s3\" or \"minio\"")
	}
	if c.Publish.Bucket == "" {
		return errors.New("E351").WithDetail("publish.bucket is required")
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// RoutesPath returns the absolute path to the route descriptor file.
func (c *Config) RoutesPath() string {
	return c.resolve(c.Routes)
}

// OutputPath returns the absolute path to the manifest directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// SrcPath returns the absolute path to the routes source root.
func (c *Config) SrcPath() string {
	return c.resolve(c.Src)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing routegen.json, or an error if not found.
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
			return "", errors.New("E103").
				WithDetail("No routegen.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'routegen init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or the nearest parent containing routegen.json.
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
