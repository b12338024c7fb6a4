// Package state wires the client's long-lived pieces together: config,
// session, API client, note cache, and pins. Everything that mutates
// shared state does it through here.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Paintersrp/pad/internal/api"
	"github.com/Paintersrp/pad/internal/config"
	"github.com/Paintersrp/pad/internal/constants"
	"github.com/Paintersrp/pad/internal/notes"
	"github.com/Paintersrp/pad/internal/pin"
	"github.com/Paintersrp/pad/internal/session"
)

type State struct {
	Config  *config.Config
	Session *session.Session
	Client  *api.Client
	Store   *notes.Store
	Pins    *pin.PinManager
	Logger  *zap.Logger
	Home    string
}

func NewState(endpointOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if endpointOverride != "" {
		if err := cfg.ChangeEndpoint(endpointOverride); err != nil {
			return nil, fmt.Errorf("failed to update endpoint: %w", err)
		}
	}

	logger, err := NewLogger(home)
	if err != nil {
		return nil, err
	}

	sess := session.New(cfg.Token, cfg.Email)
	client := api.NewClient(cfg.Endpoint, func() string { return sess.Token }, logger)
	pins := pin.NewPinManager(cfg.PinnedNotes, cfg.SetPinnedNotes)

	return &State{
		Config:  cfg,
		Session: sess,
		Client:  client,
		Store:   notes.NewStore(),
		Pins:    pins,
		Logger:  logger,
		Home:    home,
	}, nil
}

// ChangeEndpoint repoints the client at a different server and persists
// the choice.
func (s *State) ChangeEndpoint(endpoint string) error {
	if err := s.Config.ChangeEndpoint(endpoint); err != nil {
		return err
	}
	s.Client = api.NewClient(s.Config.Endpoint, func() string { return s.Session.Token }, s.Logger)
	return nil
}

// EstablishSession persists a fresh token and primes the in-memory session.
func (s *State) EstablishSession(token, email string) error {
	if err := s.Config.ChangeToken(token, email); err != nil {
		return err
	}
	s.Session.Token = token
	s.Session.Email = email
	return nil
}

// Logout tears the session down: in-memory state, cached notes and
// selection, pins, and the persisted token all go together.
func (s *State) Logout() error {
	s.Session.Clear()
	s.Store.ReplaceAll(nil)
	s.Store.Selection().Clear()

	if err := s.Pins.Clear(); err != nil {
		return err
	}
	return s.Config.ClearSession()
}

func (s *State) Close() error {
	if s == nil || s.Logger == nil {
		return nil
	}
	// Sync on a file sink can fail on some platforms; nothing to do about it.
	_ = s.Logger.Sync()
	return nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// NewLogger builds a file-backed zap logger. The TUI owns the terminal,
// so nothing may write to stdout or stderr while it runs.
func NewLogger(home string) (*zap.Logger, error) {
	logDir := filepath.Join(home, constants.ConfigDir)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, constants.LogFile)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if os.Getenv("PAD_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
