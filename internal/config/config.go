// Package config wraps Viper with bigoref defaults and environment binding.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/HerbHall/bigoref/pkg/models"
)

// EnvPrefix is prepended to every environment override, e.g. BIGOREF_SERVER_PORT.
const EnvPrefix = "BIGOREF"

// Default values applied by Load.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 8080
	DefaultRateLimit = 20.0
	DefaultRateBurst = 40
	DefaultLogLevel  = "info"

	DefaultShutdownTimeout = 10 * time.Second
)

// ServerSettings is the server.* subtree.
type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Config is a read-only view over a Viper instance.
// A Config built from a nil Viper returns zero values for every key.
type Config struct {
	v *viper.Viper
}

// New wraps v. A nil v yields an empty configuration.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// Load builds the configuration from defaults, an optional YAML file at path,
// and BIGOREF_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return New(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.rate_limit", DefaultRateLimit)
	v.SetDefault("server.rate_burst", DefaultRateBurst)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("catalog.languages", []string{string(models.LanguageCPP), string(models.LanguageJava)})
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.development", false)
}

// GetString returns the value of key as a string.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the value of key as an int.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetFloat64 returns the value of key as a float64.
func (c *Config) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }

// GetBool returns the value of key as a bool.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the value of key as a time.Duration.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// GetStringSlice returns the value of key as a slice of strings.
func (c *Config) GetStringSlice(key string) []string { return c.v.GetStringSlice(key) }

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Unmarshal decodes the whole configuration into target.
func (c *Config) Unmarshal(target any) error { return c.v.Unmarshal(target) }

// Server decodes the server.* settings. Environment overrides apply.
func (c *Config) Server() (ServerSettings, error) {
	var all struct {
		Server ServerSettings `mapstructure:"server"`
	}
	if err := c.Unmarshal(&all); err != nil {
		return ServerSettings{}, fmt.Errorf("config: server: %w", err)
	}
	return all.Server, nil
}

// ServerAddr joins server.host and server.port.
func (c *Config) ServerAddr() string {
	host := c.GetString("server.host")
	port := c.GetInt("server.port")
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Languages returns the solution languages every question must carry.
// Entries may be separated by whitespace or commas. An unset key yields
// the defaults.
func (c *Config) Languages() []models.Language {
	if !c.IsSet("catalog.languages") {
		return models.DefaultLanguages()
	}
	var out []models.Language
	for _, item := range c.GetStringSlice("catalog.languages") {
		for _, l := range strings.Split(item, ",") {
			if l = strings.TrimSpace(l); l != "" {
				out = append(out, models.Language(l))
			}
		}
	}
	return out
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	raw := c.GetString("log.level")
	if raw == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ErrInvalidRate is returned by Validate for a negative rate setting.
var ErrInvalidRate = errors.New("config: server.rate_limit and server.rate_burst must not be negative")

// Validate checks settings that cannot be enforced by type alone.
func (c *Config) Validate() error {
	if c.GetFloat64("server.rate_limit") < 0 || c.GetInt("server.rate_burst") < 0 {
		return ErrInvalidRate
	}
	if c.IsSet("server.shutdown_timeout") && c.GetDuration("server.shutdown_timeout") <= 0 {
		return errors.New("config: server.shutdown_timeout must be positive")
	}
	if p := c.GetInt("server.port"); p < 0 || p > 65535 {
		return fmt.Errorf("config: server.port %d out of range", p)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
