package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "STOREFRONT"
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
)

// Storage drivers.
const (
	DriverSQLite  = "sqlite"
	DriverSpanner = "spanner"
	DriverMemory  = "memory"
)

// Catalog sources.
const (
	SourceStatic  = "static"
	SourceSpanner = "spanner"
)

var ErrInvalidConfig = errors.New("invalid config")

type storage struct {
	Driver          string `mapstructure:"driver"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	SpannerDatabase string `mapstructure:"spanner_database"`
}

type cart struct {
	StorageKey string `mapstructure:"storage_key"`
}

type catalog struct {
	Source      string `mapstructure:"source"`
	DatasetPath string `mapstructure:"dataset_path"`
}

type Config struct {
	LogLevel  string  `mapstructure:"log_level"`
	LogFormat string  `mapstructure:"log_format"`
	Storage   storage `mapstructure:"storage"`
	Cart      cart    `mapstructure:"cart"`
	Catalog   catalog `mapstructure:"catalog"`
}

// flagKeys maps command-line flags to config keys. Flags that are not
// registered on the given set are ignored.
var flagKeys = map[string]string{
	"log-level":        "log_level",
	"log-format":       "log_format",
	"storage-driver":   "storage.driver",
	"sqlite-path":      "storage.sqlite_path",
	"spanner-database": "storage.spanner_database",
	"cart-key":         "cart.storage_key",
	"catalog-source":   "catalog.source",
	"dataset":          "catalog.dataset_path",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "storefront.db")
	v.SetDefault("storage.spanner_database", "")
	v.SetDefault("cart.storage_key", "cart")
	v.SetDefault("catalog.source", SourceStatic)
	v.SetDefault("catalog.dataset_path", "")
}

// Load resolves the config from, in increasing priority: defaults, the YAML
// file named by --config or STOREFRONT_CONFIG_FILE, STOREFRONT_* environment
// variables, and explicitly set flags.
func Load(fs *pflag.FlagSet) (Config, error) {
	const op = "config.Load"

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := configFilePath(fs); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func configFilePath(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return ""
}

func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("storage.sqlite_path is required for the sqlite driver"))
		}
	case DriverSpanner:
		if c.Storage.SpannerDatabase == "" {
			errs = append(errs, errors.New("storage.spanner_database is required for the spanner driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Catalog.Source {
	case SourceStatic:
	case SourceSpanner:
		if c.Storage.SpannerDatabase == "" {
			errs = append(errs, errors.New("storage.spanner_database is required for the spanner catalog source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.source %q", c.Catalog.Source))
	}

	if c.Cart.StorageKey == "" {
		errs = append(errs, errors.New("cart.storage_key cannot be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// UsesSpanner reports whether any component needs a Spanner client.
func (c Config) UsesSpanner() bool {
	return c.Storage.Driver == DriverSpanner || c.Catalog.Source == SourceSpanner
}
