package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"

	"github.com/Paintersrp/pad/internal/constants"
)

// Config is the client's durable local state: where the pad server lives,
// the bearer token from the last login, and the pinned-note preference.
// It is the only thing pad writes to disk.
type Config struct {
	Endpoint    string   `yaml:"endpoint"     json:"endpoint"`
	Token       string   `yaml:"token"        json:"token"`
	Email       string   `yaml:"email"        json:"email"`
	PinnedNotes []string `yaml:"pinned_notes" json:"pinned_notes"`

	home string `yaml:"-"`
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: home}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ensureDefaults()
	cfg.syncViper()

	return cfg, nil
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = constants.DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.PinnedNotes == nil {
		cfg.PinnedNotes = []string{}
	}
}

func (cfg *Config) syncViper() {
	viper.Set("endpoint", cfg.Endpoint)
	viper.Set("token", cfg.Token)
	viper.Set("email", cfg.Email)
	viper.Set("pinned_notes", append([]string(nil), cfg.PinnedNotes...))
}

func (cfg *Config) Save() error {
	cfg.ensureDefaults()
	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func (cfg *Config) GetConfigPath() string {
	home := cfg.home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}
	return GetConfigPath(home)
}

// ChangeToken stores a fresh bearer token and the identity it belongs to.
func (cfg *Config) ChangeToken(token, email string) error {
	cfg.Token = token
	cfg.Email = email
	return cfg.Save()
}

func (cfg *Config) ChangeEndpoint(endpoint string) error {
	cfg.Endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	return cfg.Save()
}

// SetPinnedNotes replaces the persisted pinned id set.
func (cfg *Config) SetPinnedNotes(ids []string) error {
	cfg.PinnedNotes = append([]string{}, ids...)
	return cfg.Save()
}

// ClearSession wipes the token, identity, and pins together. Pins are
// treated as belonging to the account that made them, so logout takes
// them along.
func (cfg *Config) ClearSession() error {
	cfg.Token = ""
	cfg.Email = ""
	cfg.PinnedNotes = []string{}
	return cfg.Save()
}

func (cfg *Config) HasToken() bool {
	return strings.TrimSpace(cfg.Token) != ""
}
