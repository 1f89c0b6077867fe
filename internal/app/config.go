package app

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"protmotif/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. PROTMOTIF_LOG_LEVEL.
const EnvPrefix = "PROTMOTIF"

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// interface to bind; empty means all
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// PostgresConfig holds the discrete connection settings.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN renders the settings as a libpq keyword/value string.
func (p PostgresConfig) DSN() string {
	parts := []string{"host=" + p.Host, "port=" + strconv.Itoa(p.Port)}
	if p.Database != "" {
		parts = append(parts, "dbname="+p.Database)
	}
	if p.User != "" {
		parts = append(parts, "user="+p.User)
	}
	if p.Password != "" {
		parts = append(parts, "password="+p.Password)
	}
	if p.SSLMode != "" {
		parts = append(parts, "sslmode="+p.SSLMode)
	}
	return strings.Join(parts, " ")
}

// DatabaseConfig selects and locates the database.
type DatabaseConfig struct {
	// sqlite or postgres; empty picks postgres when a postgres host is set
	Driver   string         `mapstructure:"driver"`
	DSN      string         `mapstructure:"dsn"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// LimitsConfig holds the sequence length ceilings.
type LimitsConfig struct {
	// ceiling for sequences stored as proteins
	SubmitMaxLength int `mapstructure:"submit-max-length"`
	// ceiling for ad-hoc structure and motif analysis
	MaxProteinLength int `mapstructure:"max-protein-length"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ClientConfig configures the CLI's remote commands.
type ClientConfig struct {
	Server string `mapstructure:"server"`
	User   string `mapstructure:"user"`
}

// Config is the root-level settings struct, populated from defaults, an
// optional config file and the environment, in increasing precedence.
type Config struct {
	DataDir  string         `mapstructure:"data-dir"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Log      LogConfig      `mapstructure:"log"`
	Client   ClientConfig   `mapstructure:"client"`
}

// legacyEnv lists the unprefixed variable names still honoured.
var legacyEnv = map[string]string{
	"server.port":                "PORT",
	"limits.max-protein-length":  "MAX_PROTEIN_LENGTH",
	"database.postgres.host":     "PG_HOST",
	"database.postgres.port":     "PG_PORT",
	"database.postgres.database": "PG_DATABASE",
	"database.postgres.user":     "PG_USER",
	"database.postgres.password": "PG_PASSWORD",
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data-dir", "data")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.postgres.host", "")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "")
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("limits.submit-max-length", 1000)
	v.SetDefault("limits.max-protein-length", 2000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("client.server", "http://localhost:3000")
	v.SetDefault("client.user", "")
}

// LoadConfig reads configuration into a Config. path names an explicit
// config file; when empty, protmotif.{yaml,json,toml} is looked up in the
// working directory and $HOME/.protmotif, and a missing file is fine.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return Config{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("protmotif")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".protmotif"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.resolve(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// resolve fills derived settings and validates the result.
func (c *Config) resolve() error {
	if c.Database.Driver == "" {
		c.Database.Driver = store.DriverSQLite
		if c.Database.Postgres.Host != "" {
			c.Database.Driver = store.DriverPostgres
		}
	}
	switch c.Database.Driver {
	case store.DriverSQLite:
		if c.Database.DSN == "" {
			c.Database.DSN = filepath.Join(c.DataDir, "protmotif.db")
		}
	case store.DriverPostgres:
		if c.Database.DSN == "" {
			if c.Database.Postgres.Host == "" {
				return errors.New("postgres driver selected but no dsn or postgres host configured")
			}
			c.Database.DSN = c.Database.Postgres.DSN()
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Limits.SubmitMaxLength < 1 || c.Limits.MaxProteinLength < 1 {
		return errors.New("sequence length limits must be positive")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := url.Parse(c.Client.Server); err != nil {
		return fmt.Errorf("invalid client server url: %w", err)
	}
	return nil
}
