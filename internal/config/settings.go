package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings is the runtime configuration, read from YAML and PRIRODA_* variables.
type Settings struct {
	Backend  BackendSettings  `mapstructure:"backend"`
	Source   SourceSettings   `mapstructure:"source"`
	Server   ServerSettings   `mapstructure:"server"`
	UI       UISettings       `mapstructure:"ui"`
	Log      LogSettings      `mapstructure:"log"`
	Reminder ReminderSettings `mapstructure:"reminder"`
}

// BackendSettings points at the records REST API.
type BackendSettings struct {
	URL   string `mapstructure:"url"`
	Login string `mapstructure:"login"`
}

// SourceSettings selects where patients are loaded from.
type SourceSettings struct {
	Mode      string `mapstructure:"mode"` // SourceModeWeb or SourceModeLocal
	LocalPath string `mapstructure:"local_path"`
}

// ServerSettings configures the birthday feed server.
type ServerSettings struct {
	Port               string `mapstructure:"port"`
	RefreshIntervalMin int    `mapstructure:"refresh_interval_min"`
}

// UISettings holds list and language preferences.
type UISettings struct {
	PageSize int    `mapstructure:"page_size"`
	Language string `mapstructure:"language"`
}

// LogSettings configures the rotated log file.
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ReminderSettings describes the VALARM attached to feed events.
type ReminderSettings struct {
	Enabled   bool   `mapstructure:"enabled"`
	Value     int    `mapstructure:"value"`
	Unit      string `mapstructure:"unit"`
	Direction string `mapstructure:"direction"`
}

// Load reads the settings. An empty path searches the working directory and
// the user config directory; a missing file there is not an error.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + AppBinary)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", ErrConfigRead, err)
		}
		slog.Debug(MsgConfigDefault, LogKeyComponent, CompConfig)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigDecode, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigInvalid, err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackendURL, DefaultBackendURL)
	v.SetDefault(KeyBackendLogin, "")
	v.SetDefault(KeySourceMode, SourceModeWeb)
	v.SetDefault(KeySourceLocalPath, "")
	v.SetDefault(KeyServerPort, DefaultPort)
	v.SetDefault(KeyRefreshMin, DefaultRefreshMin)
	v.SetDefault(KeyPageSize, DefaultPageSize)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyReminderEnabled, false)
	v.SetDefault(KeyReminderValue, DefaultReminderValue)
	v.SetDefault(KeyReminderUnit, UnitDays)
	v.SetDefault(KeyReminderDir, DirBefore)
}

// Validate checks the settings for values the application cannot work with.
func (s *Settings) Validate() error {
	switch s.Source.Mode {
	case SourceModeWeb:
		if s.Backend.URL == "" {
			return errors.New(ErrBackendURLEmpty)
		}
	case SourceModeLocal:
		if s.Source.LocalPath == "" {
			return errors.New(ErrLocalPathEmpty)
		}
	default:
		return fmt.Errorf("%s: %q", ErrModeUnsupport, s.Source.Mode)
	}

	if err := ValidatePort(s.Server.Port); err != nil {
		return err
	}
	if s.Server.RefreshIntervalMin <= 0 {
		return errors.New(ErrRefreshInterval)
	}
	if s.UI.PageSize <= 0 {
		return errors.New(ErrPageSize)
	}
	if !slices.Contains(SupportedLanguages, s.UI.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, s.UI.Language)
	}

	if s.Reminder.Enabled {
		switch s.Reminder.Unit {
		case UnitDays, UnitHours, UnitMinutes:
		default:
			return fmt.Errorf("%s: %q", ErrReminderUnit, s.Reminder.Unit)
		}
		if s.Reminder.Direction != DirBefore && s.Reminder.Direction != DirAfter {
			return fmt.Errorf("%s: %q", ErrReminderDir, s.Reminder.Direction)
		}
	}
	return nil
}

// ValidatePort checks a TCP port given as text.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < 1 || n > 65535 {
		return errors.New(ErrPortRange)
	}
	return nil
}

// RefreshInterval returns the sync period of the feed worker.
func (s *Settings) RefreshInterval() time.Duration {
	if s.Server.RefreshIntervalMin <= 0 {
		return DefaultRefreshMin * time.Minute
	}
	return time.Duration(s.Server.RefreshIntervalMin) * time.Minute
}

// ReminderTrigger renders the reminder as an ISO8601 duration ("-P1D"),
// or "" when reminders are disabled.
func (s *Settings) ReminderTrigger() string {
	r := s.Reminder
	if !r.Enabled {
		return ""
	}

	sign := ISOPeriodPrefix
	if r.Direction == DirBefore {
		sign = ISONegativePrefix
	}

	switch r.Unit {
	case UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, ISOTime, r.Value, ISOHour)
	case UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, ISOTime, r.Value, ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, r.Value, ISODay)
	}
}
