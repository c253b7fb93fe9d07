// Package config loads per-rule settings from a .linterrc file.
//
// The file maps rule ids to a state:
//
//	{"rules": {"no-console": "warn", "vue/no-v-html": "off"}}
//
// The same shape is accepted as TOML ([rules] table) and YAML. A rule with
// no entry is enabled at error severity.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// State is the configured state of one rule.
type State uint8

const (
	StateError State = iota // default when absent or unrecognized
	StateWarn
	StateOff
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateWarn:
		return "warn"
	default:
		return "error"
	}
}

// ParseState maps a config value to a State. Values are compared exactly:
// only "off" disables a rule. Anything other than off, warn or error still
// enables the rule; ok is false in that case.
func ParseState(v string) (s State, ok bool) {
	switch v {
	case "off":
		return StateOff, true
	case "warn":
		return StateWarn, true
	case "error":
		return StateError, true
	default:
		return StateError, false
	}
}

// Names of config files probed by Find, in priority order.
var Names = []string{
	".linterrc.json",
	".linterrc.toml",
	".linterrc.yaml",
	".linterrc.yml",
}

// ErrUnknownFormat is returned when a config file has an extension no
// decoder handles.
var ErrUnknownFormat = errors.New("unknown config format")

// Unrecognized is a rule entry whose value is not a known state.
type Unrecognized struct {
	Rule  string
	Value string
}

// Config is the loaded rule configuration. It is read-only after Load.
type Config struct {
	Path  string           // empty for the default config
	Rules map[string]State // explicit entries only
	// Unrecognized entries are enabled at error severity and reported
	// once by the caller.
	Unrecognized []Unrecognized
}

// Default returns a config with no entries: every rule is enabled.
func Default() *Config {
	return &Config{Rules: map[string]State{}}
}

// State returns the configured state of a rule.
func (c *Config) State(id string) State {
	if c == nil {
		return StateError
	}
	if s, ok := c.Rules[id]; ok {
		return s
	}
	return StateError
}

// Enabled reports whether the rule runs.
func (c *Config) Enabled(id string) bool {
	return c.State(id) != StateOff
}

// IDs returns the ids with explicit entries, sorted.
func (c *Config) IDs() []string {
	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type rawConfig struct {
	Rules map[string]string `json:"rules" toml:"rules" yaml:"rules"`
}

// Load reads and decodes the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Format of a config document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return Format(filepath.Ext(path))
	}
}

// Parse decodes a config document in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	var raw rawConfig
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	cfg := Default()
	for id, v := range raw.Rules {
		s, ok := ParseState(v)
		if !ok {
			cfg.Unrecognized = append(cfg.Unrecognized, Unrecognized{Rule: id, Value: v})
		}
		cfg.Rules[id] = s
	}
	sort.Slice(cfg.Unrecognized, func(i, j int) bool {
		return cfg.Unrecognized[i].Rule < cfg.Unrecognized[j].Rule
	})
	return cfg, nil
}

// Find walks up from startDir to the first directory holding one of Names.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range Names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads the explicit path if given, otherwise the nearest config
// above startDir, otherwise the default config.
func Resolve(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
