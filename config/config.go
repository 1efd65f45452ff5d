package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/mws"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MWS"

// Config holds endpoint, credentials and runtime settings.
type Config struct {
	Host            string        `yaml:"host" envconfig:"HOST"`
	Port            int           `yaml:"port" envconfig:"PORT"`
	AccessKeyID     string        `yaml:"access_key_id" envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" envconfig:"SECRET_ACCESS_KEY"`
	SellerID        string        `yaml:"seller_id" envconfig:"SELLER_ID"`
	Timeout         time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	Debug           bool          `yaml:"debug" envconfig:"DEBUG"`
	LogLevel        string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Host:     mws.DefaultHost,
		Port:     mws.DefaultPort,
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and MWS_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}

// Validate reports missing credentials and out of range values.
func (c *Config) Validate() error {
	var errs []error

	if c.AccessKeyID == "" {
		errs = append(errs, errors.New("access_key_id is required"))
	}

	if c.SecretAccessKey == "" {
		errs = append(errs, errors.New("secret_access_key is required"))
	}

	if c.Host == "" {
		errs = append(errs, errors.New("host is required"))
	}

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout %s must not be negative", c.Timeout))
	}

	return errors.Join(errs...)
}

// Options converts the settings to client options.
func (c *Config) Options() []mws.Option {
	opts := []mws.Option{
		mws.WithHost(c.Host),
		mws.WithPort(c.Port),
		mws.WithDebugLogging(c.Debug),
	}

	if c.Timeout > 0 {
		opts = append(opts, mws.WithHTTPTimeout(c.Timeout))
	}

	return opts
}

// NewClient validates the settings and constructs a client.
func (c *Config) NewClient(extra ...mws.Option) (*mws.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return mws.New(c.AccessKeyID, c.SecretAccessKey, c.SellerID, append(c.Options(), extra...)...)
}
