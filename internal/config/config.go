package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a double
// underscore: ROSTER_LOGGING__LEVEL=debug sets logging.level.
const EnvPrefix = "ROSTER_"

// DefaultFile is loaded when no path is given and it exists in the working
// directory.
const DefaultFile = "roster.yaml"

type Config struct {
	Session SessionConfig `json:"session"`
	Export  ExportConfig  `json:"export"`
	Logging LoggingConfig `json:"logging"`
	Random  RandomConfig  `json:"random"`
}

// RandomConfig controls the random source of the Random and Latin Square
// strategies.
type RandomConfig struct {
	// Seed makes runs reproducible when non-zero.
	Seed uint64 `json:"seed"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	var cfg Config
	cfg.Session.SetDefaults(nil)
	cfg.Export.SetDefaults()
	cfg.Logging.SetDefaults()
	return &cfg
}

// Load reads path (YAML or JSON) and then environment overrides. An empty
// path loads DefaultFile when present and otherwise only the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Session.SetDefaults(k)
	cfg.Export.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"session.participants":       true,
	"session.boards":             true,
	"session.days":               true,
	"session.timeslots":          true,
	"session.standard_scenarios": true,
	"export.palette":             true,
}

func envValue(key, value string) (string, any) {
	key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
