package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Tables        int    `toml:"tables"`          // OPENSPACE_TABLES (default 6)
	SeatsPerTable int    `toml:"seats_per_table"` // OPENSPACE_SEATS_PER_TABLE (default 4)
	NamesColumn   string `toml:"names_column"`    // OPENSPACE_NAMES_COLUMN (default "Names")
	OutputFile    string `toml:"output_file"`     // OPENSPACE_OUTPUT_FILE (default "openspace.json")

	DatabaseURL string   `toml:"database_url"` // OPENSPACE_DATABASE_URL (optional, empty = JSON file store)
	RedisAddr   string   `toml:"redis_addr"`   // OPENSPACE_REDIS_ADDR (optional, empty = no cache)
	RedisTTL    Duration `toml:"redis_ttl"`    // OPENSPACE_REDIS_TTL (default 24h)
	NATSURL     string   `toml:"nats_url"`     // OPENSPACE_NATS_URL (optional, empty = no events)
	HTTPAddr    string   `toml:"http_addr"`    // OPENSPACE_HTTP_ADDR (default ":8080")
}

// Duration decodes TOML strings such as "30m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() *Config {
	return &Config{
		Tables:        6,
		SeatsPerTable: 4,
		NamesColumn:   "Names",
		OutputFile:    "openspace.json",
		RedisTTL:      Duration{24 * time.Hour},
		HTTPAddr:      ":8080",
	}
}

// Load applies, in order: defaults, the TOML file at path (if non-empty),
// a .env file in the working directory, then OPENSPACE_* variables.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: failed to load .env: %v", err)
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if c.Tables < 0 || c.SeatsPerTable < 0 {
		return nil, fmt.Errorf("room dimensions must not be negative (tables=%d, seats_per_table=%d)", c.Tables, c.SeatsPerTable)
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Tables, err = envInt("OPENSPACE_TABLES", c.Tables); err != nil {
		return err
	}
	if c.SeatsPerTable, err = envInt("OPENSPACE_SEATS_PER_TABLE", c.SeatsPerTable); err != nil {
		return err
	}

	c.NamesColumn = envOrDefault("OPENSPACE_NAMES_COLUMN", c.NamesColumn)
	c.OutputFile = envOrDefault("OPENSPACE_OUTPUT_FILE", c.OutputFile)
	c.DatabaseURL = envOrDefault("OPENSPACE_DATABASE_URL", c.DatabaseURL)
	c.RedisAddr = envOrDefault("OPENSPACE_REDIS_ADDR", c.RedisAddr)
	c.NATSURL = envOrDefault("OPENSPACE_NATS_URL", c.NATSURL)
	c.HTTPAddr = envOrDefault("OPENSPACE_HTTP_ADDR", c.HTTPAddr)

	if v := os.Getenv("OPENSPACE_REDIS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("OPENSPACE_REDIS_TTL: %w", err)
		}
		c.RedisTTL = Duration{d}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
