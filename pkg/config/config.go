package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/labible/sitemap/pkg/data"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EngineMemory = "memory"
	EngineDuckDB = "duckdb"

	envPrefix = "LABIBLE"
)

// Config holds everything the generator used to read from globals.
type Config struct {
	Site     string    `mapstructure:"site"`
	DataPath string    `mapstructure:"data"`
	OutPath  string    `mapstructure:"out"`
	Engine   string    `mapstructure:"engine"`
	DBPath   string    `mapstructure:"db"`
	Pages    []Page    `mapstructure:"pages"`
	Log      LogConfig `mapstructure:"log"`
}

// Page is a fixed page listed ahead of the chapter pages.
type Page struct {
	Path       string `mapstructure:"path"`
	ChangeFreq string `mapstructure:"changefreq"`
	Priority   string `mapstructure:"priority"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration of labible.app.
func Default() Config {
	return Config{
		Site:     "https://labible.app",
		DataPath: "data/segond_1910.json",
		OutPath:  "sitemap.xml",
		Engine:   EngineMemory,
		Pages: []Page{
			{Path: "/", ChangeFreq: "daily", Priority: "1.0"},
			{Path: "/plan-lecture-1-an.html", ChangeFreq: "weekly", Priority: "0.8"},
			{Path: "/a-propos.html", ChangeFreq: "monthly", Priority: "0.5"},
			{Path: "/confidentialite.html", ChangeFreq: "monthly", Priority: "0.5"},
			{Path: "/contact.html", ChangeFreq: "monthly", Priority: "0.5"},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"site":       "site",
	"data":       "data",
	"out":        "out",
	"engine":     "engine",
	"db":         "db",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load reads the optional config file at path, then LABIBLE_* environment
// variables, then any flags that were set explicitly. Missing keys keep
// their Default value.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	cfg := Default()
	v.SetDefault("site", cfg.Site)
	v.SetDefault("data", cfg.DataPath)
	v.SetDefault("out", cfg.OutPath)
	v.SetDefault("engine", cfg.Engine)
	v.SetDefault("db", cfg.DBPath)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("labible-sitemap")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	// a configured page list replaces the default one instead of merging into it
	if v.IsSet("pages") {
		cfg.Pages = nil
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Site = strings.TrimRight(strings.TrimSpace(cfg.Site), "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Site == "" {
		return errors.New("site is required")
	}
	u, err := url.Parse(c.Site)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site %q is not an absolute URL", c.Site)
	}
	if c.DataPath == "" {
		return errors.New("data path is required")
	}
	if c.OutPath == "" {
		return errors.New("output path is required")
	}
	switch c.Engine {
	case EngineMemory, EngineDuckDB:
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", c.Engine, EngineMemory, EngineDuckDB)
	}
	for i, p := range c.Pages {
		if !strings.HasPrefix(p.Path, "/") {
			return fmt.Errorf("pages[%d]: path %q must start with /", i, p.Path)
		}
		if !data.ChangeFreq(p.ChangeFreq).Valid() {
			return fmt.Errorf("pages[%d]: invalid changefreq %q", i, p.ChangeFreq)
		}
		prio, err := strconv.ParseFloat(p.Priority, 64)
		if err != nil || prio < 0 || prio > 1 {
			return fmt.Errorf("pages[%d]: priority %q must be between 0.0 and 1.0", i, p.Priority)
		}
	}
	return nil
}

// StaticEntries returns the fixed pages as sitemap entries, in order.
func (c *Config) StaticEntries() []data.URLEntry {
	entries := make([]data.URLEntry, 0, len(c.Pages))
	for _, p := range c.Pages {
		entries = append(entries, data.URLEntry{
			Path:       p.Path,
			ChangeFreq: data.ChangeFreq(p.ChangeFreq),
			Priority:   p.Priority,
		})
	}
	return entries
}
