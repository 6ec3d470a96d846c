package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded or edited configuration fails
// validation.
var ErrInvalidConfig = errors.New("invalid config")

// GeneratorConfig controls how the fake notification feed is produced.
type GeneratorConfig struct {
	// Count is the number of notifications generated per session.
	Count int `mapstructure:"count" yaml:"count" validate:"gte=0,lte=10000"`

	// Seed seeds the random source. Zero means a time-based seed.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// MaxDaysAgo bounds how far in the past a notification may be sent.
	MaxDaysAgo int `mapstructure:"max_days_ago" yaml:"max_days_ago" validate:"gte=0,lte=365"`

	// PairedContent samples title and body from the same content pair
	// instead of independently.
	PairedContent bool `mapstructure:"paired_content" yaml:"paired_content"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale" validate:"required,oneof=en es"`
}

// LogConfig controls the file logger. The terminal is owned by the UI, so
// logs never go to stdout.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Display   DisplayConfig   `mapstructure:"display" yaml:"display"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// DefaultConfigDir returns ~/.config/notifications.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "notifications")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/notifications/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Generator: GeneratorConfig{
			Count:      50,
			MaxDaysAgo: 10,
		},
		Display: DisplayConfig{
			Locale: "en",
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(DefaultConfigDir(), "notifications.log"),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed with NOTIFICATIONS_ override file values
// (e.g. NOTIFICATIONS_GENERATOR_SEED=42). If the file does not exist, the
// defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("notifications")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("generator.count", def.Generator.Count)
	v.SetDefault("generator.seed", def.Generator.Seed)
	v.SetDefault("generator.max_days_ago", def.Generator.MaxDaysAgo)
	v.SetDefault("generator.paired_content", def.Generator.PairedContent)
	v.SetDefault("display.locale", def.Display.Locale)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("generator.count", cfg.Generator.Count)
	v.Set("generator.seed", cfg.Generator.Seed)
	v.Set("generator.max_days_ago", cfg.Generator.MaxDaysAgo)
	v.Set("generator.paired_content", cfg.Generator.PairedContent)
	v.Set("display.locale", cfg.Display.Locale)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// configValidator bundles a validator with its English translator so
// failures read as sentences rather than tag names.
type configValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newConfigValidator() (*configValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("english translator not found")
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("registering translations: %w", err)
	}

	return &configValidator{validate: validate, translator: trans}, nil
}

// Validate checks field constraints and returns an error wrapping
// ErrInvalidConfig that lists every failing field.
func (c *AppConfig) Validate() error {
	cv, err := newConfigValidator()
	if err != nil {
		return err
	}

	err = cv.validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(cv.translator))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
