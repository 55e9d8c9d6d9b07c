package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "17:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue","Wed","Thu","Fri"]
	Holidays []string `mapstructure:"holidays"` // ["2025-01-26", "2025-08-15"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
}

// PickerConfig tunes the HH:MM picker.
type PickerConfig struct {
	Strict    bool `mapstructure:"strict"`    // refuse to confirm incomplete digits
	Clipboard bool `mapstructure:"clipboard"` // ctrl+v reads the system clipboard
}

// StatsConfig drives `tempo summary`.
type StatsConfig struct {
	Target string `mapstructure:"target"` // tracked time wanted per workday, "08:00"
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug|info|warn|error
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Picker   PickerConfig   `mapstructure:"picker"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Log      LogConfig      `mapstructure:"log"`

	path string
}

func Default() Config {
	return Config{
		Theme: "default",
		Reminder: ReminderConfig{
			Enabled:  true,
			Time:     "17:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Holidays: []string{},
			Timezone: "",
		},
		Picker: PickerConfig{
			Strict:    false,
			Clipboard: true,
		},
		Stats: StatsConfig{Target: "08:00"},
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultPath is ~/.config/tempo/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tempo", "config.yaml"), nil
}

// Load reads the default config file. A missing file yields defaults.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

func newViper(path string, cfg Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("TEMPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)
	v.SetDefault("picker.strict", cfg.Picker.Strict)
	v.SetDefault("picker.clipboard", cfg.Picker.Clipboard)
	v.SetDefault("stats.target", cfg.Stats.Target)
	v.SetDefault("log.level", cfg.Log.Level)
	return v
}

// LoadFrom reads the config file at path. A missing file yields defaults.
func LoadFrom(path string) (Config, error) {
	def := Default()
	def.path = path

	v := newViper(path, def)
	if err := v.ReadInConfig(); err != nil && !isMissing(path) {
		return def, fmt.Errorf("config read: %w", err)
	}
	// Defaults are registered with viper; decoding into them would merge
	// lists element by element instead of replacing them.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def, fmt.Errorf("config unmarshal: %w", err)
	}
	cfg.path = path

	for i, d := range cfg.Reminder.Workdays {
		cfg.Reminder.Workdays[i] = normalizeDay(d)
	}
	return cfg, nil
}

func isMissing(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

// normalizeDay turns "monday", "MON" or " mon " into "Mon".
func normalizeDay(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if len(d) > 3 {
		d = d[:3]
	}
	if d == "" {
		return d
	}
	return strings.ToUpper(d[:1]) + d[1:]
}

// Path is the file the config was loaded from.
func (c Config) Path() string { return c.path }

// Save writes c back to the file it was loaded from.
func (c Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("theme", c.Theme)
	v.Set("reminder.enabled", c.Reminder.Enabled)
	v.Set("reminder.time", c.Reminder.Time)
	v.Set("reminder.workdays", c.Reminder.Workdays)
	v.Set("reminder.holidays", c.Reminder.Holidays)
	v.Set("reminder.timezone", c.Reminder.Timezone)
	v.Set("picker.strict", c.Picker.Strict)
	v.Set("picker.clipboard", c.Picker.Clipboard)
	v.Set("stats.target", c.Stats.Target)
	v.Set("log.level", c.Log.Level)
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
