// Package config loads configuration for the datepicker demo: a viper-based
// main config with env overrides, and a TOML presets file listing blocked
// date spans.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Picker PickerConfig
	UI     UIConfig
}

// PickerConfig maps onto datepicker.Options.
type PickerConfig struct {
	NumberOfMonths int
	FirstDayOfWeek string // weekday name, e.g. "monday"
	InputFormat    string // Go time layout
	MinDate        string // ISO date, empty = default
	MaxDate        string // ISO date, empty = unbounded
	MinRangeDays   int
	MaxRangeDays   int
	FixRangeDays   int
	Padded         bool
	BlockedFile    string // path to blocked-dates TOML, empty = none
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AccentColor string
}

// Load reads configuration from file and env. Env var overrides use prefix
// DATEPICKER_, e.g. DATEPICKER_PICKER_NUMBER_OF_MONTHS=3.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DATEPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "datepicker"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("picker.number_of_months", 2)
	v.SetDefault("picker.first_day_of_week", "monday")
	v.SetDefault("picker.input_format", "02/01/2006")
	v.SetDefault("picker.min_date", "")
	v.SetDefault("picker.max_date", "")
	v.SetDefault("picker.min_range_days", 0)
	v.SetDefault("picker.max_range_days", 0)
	v.SetDefault("picker.fix_range_days", 0)
	v.SetDefault("picker.padded", true)
	v.SetDefault("picker.blocked_file", "")
	v.SetDefault("ui.accent_color", "#89b4fa")
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Picker: PickerConfig{
			NumberOfMonths: v.GetInt("picker.number_of_months"),
			FirstDayOfWeek: v.GetString("picker.first_day_of_week"),
			InputFormat:    v.GetString("picker.input_format"),
			MinDate:        v.GetString("picker.min_date"),
			MaxDate:        v.GetString("picker.max_date"),
			MinRangeDays:   v.GetInt("picker.min_range_days"),
			MaxRangeDays:   v.GetInt("picker.max_range_days"),
			FixRangeDays:   v.GetInt("picker.fix_range_days"),
			Padded:         v.GetBool("picker.padded"),
			BlockedFile:    v.GetString("picker.blocked_file"),
		},
		UI: UIConfig{
			AccentColor: v.GetString("ui.accent_color"),
		},
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	if cfg.Picker.NumberOfMonths < 1 || cfg.Picker.NumberOfMonths > 12 {
		cfg.Picker.NumberOfMonths = 2
	}
	if _, err := ParseWeekday(cfg.Picker.FirstDayOfWeek); err != nil {
		cfg.Picker.FirstDayOfWeek = "monday"
	}
	if cfg.Picker.InputFormat == "" {
		cfg.Picker.InputFormat = "02/01/2006"
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"picker.min_date", cfg.Picker.MinDate},
		{"picker.max_date", cfg.Picker.MaxDate},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", field.value); err != nil {
			return Config{}, fmt.Errorf("%s: %q is not a YYYY-MM-DD date", field.name, field.value)
		}
	}
	return cfg, nil
}

// ParseWeekday resolves a weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == name {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
