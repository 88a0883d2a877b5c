package config

import "github.com/alexisbeaulieu97/statedeck/internal/state"

// Config represents the full statedeck configuration document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Items   ItemsConfig   `yaml:"items"`
	Metrics MetricsConfig `yaml:"metrics"`
	UI      UIConfig      `yaml:"ui"`
}

// LogConfig controls the structured logger. While the dashboard runs, logs
// only go to File and an empty File discards them. Other commands also write
// to stderr when run with --verbose.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,log_level"`
	Format string `yaml:"format" validate:"required,oneof=json console"`
	File   string `yaml:"file,omitempty"`
}

// SessionConfig holds the texts used by the session slice.
type SessionConfig struct {
	PlaceholderName string `yaml:"placeholder_name" validate:"required,max=100"`
	LoginMessage    string `yaml:"login_message" validate:"required,max=200"`
	LogoutMessage   string `yaml:"logout_message" validate:"required,max=200"`
}

// ItemsConfig sizes the generated item list.
type ItemsConfig struct {
	InitialCount int    `yaml:"initial_count" validate:"min=0,max=1000000"`
	BatchSize    int    `yaml:"batch_size" validate:"min=1,max=100000"`
	PageSize     int    `yaml:"page_size" validate:"min=1,max=500"`
	Seed         uint64 `yaml:"seed,omitempty"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
}

// UIConfig holds presentation toggles.
type UIConfig struct {
	UseUnicode bool `yaml:"use_unicode"`
}

// Default returns the configuration used when no file or override is given.
func Default() *Config {
	messages := state.DefaultMessages()
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Session: SessionConfig{
			PlaceholderName: state.DefaultPlaceholderName,
			LoginMessage:    messages.LoginSuccess,
			LogoutMessage:   messages.Logout,
		},
		Items: ItemsConfig{
			InitialCount: 1000,
			BatchSize:    1000,
			PageSize:     10,
		},
		UI: UIConfig{UseUnicode: true},
	}
}

// StateOptions converts the session settings into container options.
func (c *Config) StateOptions() []state.Option {
	return []state.Option{
		state.WithPlaceholderName(c.Session.PlaceholderName),
		state.WithMessages(state.Messages{
			LoginSuccess: c.Session.LoginMessage,
			Logout:       c.Session.LogoutMessage,
		}),
	}
}
