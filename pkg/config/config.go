package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Conversation ConversationConfig `mapstructure:"conversation"`
	Theme        ThemeConfig        `mapstructure:"theme"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ConversationConfig holds the inputs the conversation screen is built from
type ConversationConfig struct {
	Name        string `mapstructure:"name"`
	LastMessage string `mapstructure:"last_message"`
}

// ThemeConfig holds the visual settings passed explicitly into rendering
type ThemeConfig struct {
	Palette     PaletteConfig `mapstructure:"palette"`
	Font        FontConfig    `mapstructure:"font"`
	BarHeight   int           `mapstructure:"bar_height" validate:"min=1,max=5"`
	TimeFormat  string        `mapstructure:"time_format" validate:"required"`
	FooterLabel string        `mapstructure:"footer_label"`
}

// PaletteConfig holds hex colors for every themed surface
type PaletteConfig struct {
	Background string `mapstructure:"background" validate:"required,len=7,hexcolor"`
	Foreground string `mapstructure:"foreground" validate:"required,len=7,hexcolor"`
	Bar        string `mapstructure:"bar" validate:"required,len=7,hexcolor"`
	Title      string `mapstructure:"title" validate:"required,len=7,hexcolor"`
	Accent     string `mapstructure:"accent" validate:"required,len=7,hexcolor"`
	Neutral    string `mapstructure:"neutral" validate:"required,len=7,hexcolor"`
	Secondary  string `mapstructure:"secondary" validate:"required,len=7,hexcolor"`
}

// FontConfig maps font metrics onto terminal attributes
type FontConfig struct {
	LargeBold    bool `mapstructure:"large_bold"`
	SecondaryDim bool `mapstructure:"secondary_dim"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level" validate:"oneof=debug info warn warning error fatal"`
}

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	// Global config instance
	cfg *Config

	validate = validator.New()
)

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from file and environment
func Load(cfgFile string) (*Config, error) {
	// Set defaults first
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}

		// Check project directory first, then the XDG config location
		viper.AddConfigPath("./" + DirName)
		viper.AddConfigPath(filepath.Join(xdgConfigHome, "convo"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("CONVO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// Short aliases for the conversation inputs
	_ = viper.BindEnv("conversation.name", "CONVO_NAME", "CONVO_CONVERSATION_NAME")
	_ = viper.BindEnv("conversation.last_message", "CONVO_LAST_MESSAGE", "CONVO_CONVERSATION_LAST_MESSAGE")

	// A missing settings file is fine; a malformed one is not
	if err := viper.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Levels are matched case-insensitively
	loaded.Logging.Level = strings.ToLower(loaded.Logging.Level)

	if err := loaded.Validate(); err != nil {
		return nil, err
	}

	cfg = loaded
	return cfg, nil
}

// Validate checks field constraints declared on the config structs
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// setDefaults sets all default configuration values on the global viper
func setDefaults() {
	applyDefaults(viper.GetViper())
}

func applyDefaults(v *viper.Viper) {
	// Conversation defaults
	v.SetDefault("conversation.name", "Alice")
	v.SetDefault("conversation.last_message", "Are we still on for dinner tonight?")

	// Theme defaults
	v.SetDefault("theme.palette.background", "#1a1816")
	v.SetDefault("theme.palette.foreground", "#f5d7b9")
	v.SetDefault("theme.palette.bar", "#282420")
	v.SetDefault("theme.palette.title", "#d3b597")
	v.SetDefault("theme.palette.accent", "#b5546b")
	v.SetDefault("theme.palette.neutral", "#36302a")
	v.SetDefault("theme.palette.secondary", "#83715f")
	v.SetDefault("theme.font.large_bold", true)
	v.SetDefault("theme.font.secondary_dim", true)
	v.SetDefault("theme.bar_height", 3)
	v.SetDefault("theme.time_format", "3:04 PM")
	v.SetDefault("theme.footer_label", "Messages are synthesized locally")

	// Logging defaults
	v.SetDefault("logging.log_file", "./"+DirName+"/system.log")
	v.SetDefault("logging.preserve", false)
	v.SetDefault("logging.level", "info")
}

// GetConfigFileUsed returns the path to the config file being used
func GetConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// InitializeDefaults writes a settings file with default values to path.
// An existing file is left untouched.
func InitializeDefaults(path string) (bool, error) {
	if path == "" {
		path = filepath.Join(DirName, "settings.yaml")
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	applyDefaults(v)

	if err := v.SafeWriteConfigAs(path); err != nil {
		return false, fmt.Errorf("failed to write default configuration: %w", err)
	}
	return true, nil
}
