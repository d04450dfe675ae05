// ABOUTME: Settings loading: defaults, then YAML file, then ${VAR} expansion and env overrides
// ABOUTME: A missing settings file is not an error; unknown keys are

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/themeswitch-go/internal/httputil"
	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

// Settings holds the resolved configuration.
type Settings struct {
	BaseURL       string      `yaml:"base_url"`
	Proxy         string      `yaml:"proxy"`
	UserAgent     string      `yaml:"user_agent"`
	FeaturedLimit int         `yaml:"featured_limit"`
	TransitionMS  int         `yaml:"transition_ms"`
	StateFile     string      `yaml:"state_file"`
	LogLevel      string      `yaml:"log_level"`
	SSH           SSHSettings `yaml:"ssh"`
}

// SSHSettings configures `themeswitch serve`.
type SSHSettings struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Transition returns TransitionMS as a duration.
func (s *Settings) Transition() time.Duration {
	return time.Duration(s.TransitionMS) * time.Millisecond
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		BaseURL:       catalog.DefaultBaseURL,
		UserAgent:     catalog.DefaultUserAgent,
		FeaturedLimit: 6,
		TransitionMS:  150,
		StateFile:     StateFile(),
		LogLevel:      "info",
		SSH: SSHSettings{
			Addr:        "localhost:23234",
			HostKeyPath: HostKeyFile(),
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// Load resolves settings from path and the process environment.
func Load(path string) (*Settings, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, lookup LookupFunc) (*Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		pilog.Debug("config: %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := decode(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	resolveEnvVars(s, lookup)
	if err := applyEnvOverrides(s, lookup); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// decode overlays YAML onto s. Keys absent from the file keep their value.
func decode(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks field ranges.
func (s *Settings) Validate() error {
	if err := httputil.ValidateBaseURL(s.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if s.FeaturedLimit < 1 {
		return fmt.Errorf("featured_limit must be >= 1, got %d", s.FeaturedLimit)
	}
	if s.TransitionMS < 0 {
		return fmt.Errorf("transition_ms must be >= 0, got %d", s.TransitionMS)
	}
	if _, err := pilog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if s.StateFile == "" {
		return errors.New("state_file must not be empty")
	}
	return nil
}
