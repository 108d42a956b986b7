package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. PDFTX_EXTRACT_ENGINE for extract.engine.
const EnvPrefix = "PDFTX"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ExtractConfig holds the defaults of the extract command.
type ExtractConfig struct {
	Engine    string `mapstructure:"engine" yaml:"engine"`
	Format    string `mapstructure:"format" yaml:"format"`
	Normalize string `mapstructure:"normalize" yaml:"normalize"`
	Validate  bool   `mapstructure:"validate" yaml:"validate"`
}

// ValidationConfig holds PDF validation settings.
type ValidationConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// PDFToTextConfig configures the external pdftotext engine.
type PDFToTextConfig struct {
	Binary string `mapstructure:"binary" yaml:"binary"`
	Layout bool   `mapstructure:"layout" yaml:"layout"`
}

// CSVConfig configures the csv transcript format.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Extract    ExtractConfig    `mapstructure:"extract" yaml:"extract"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	PDFToText  PDFToTextConfig  `mapstructure:"pdftotext" yaml:"pdftotext"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`

	// FileUsed is the config file that was read, empty when none was found.
	FileUsed string `mapstructure:"-" yaml:"-"`
}

// flagBindings maps command-line flag names to config keys.
var flagBindings = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"engine":     "extract.engine",
	"format":     "extract.format",
	"normalize":  "extract.normalize",
	"validate":   "extract.validate",
}

var (
	supportedLogFormats  = []string{"text", "json"}
	supportedEngines     = []string{"native", "pdftotext"}
	supportedFormats     = []string{"text", "json", "yaml", "csv"}
	supportedNormalize   = []string{"none", "nfc", "nfkc"}
	supportedValidations = []string{"relaxed", "strict"}
)

// InitializeConfig loads the configuration with the precedence
// flags > environment > config file > defaults.
//
// configFile selects an explicit file; when empty, config.yaml is searched in
// $HOME/.pdf-transcript, ./.pdf-transcript and the working directory. flags may
// be nil; only flags that were set on the command line override other sources.
func InitializeConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.pdf-transcript")
		v.AddConfigPath(".pdf-transcript")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.FileUsed = v.ConfigFileUsed()

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("extract.engine", "native")
	v.SetDefault("extract.format", "text")
	v.SetDefault("extract.normalize", "none")
	v.SetDefault("extract.validate", false)

	v.SetDefault("validation.mode", "relaxed")

	v.SetDefault("pdftotext.binary", "pdftotext")
	v.SetDefault("pdftotext.layout", true)

	v.SetDefault("csv.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if !contains(supportedLogFormats, config.Log.Format) {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !contains(supportedEngines, config.Extract.Engine) {
		return fmt.Errorf("invalid engine: %s (supported: %s)", config.Extract.Engine, strings.Join(supportedEngines, ", "))
	}

	if !contains(supportedFormats, config.Extract.Format) {
		return fmt.Errorf("invalid output format: %s (supported: %s)", config.Extract.Format, strings.Join(supportedFormats, ", "))
	}

	if !contains(supportedNormalize, config.Extract.Normalize) {
		return fmt.Errorf("invalid normalization form: %s (supported: %s)", config.Extract.Normalize, strings.Join(supportedNormalize, ", "))
	}

	if !contains(supportedValidations, config.Validation.Mode) {
		return fmt.Errorf("invalid validation mode: %s (must be 'relaxed' or 'strict')", config.Validation.Mode)
	}

	if strings.TrimSpace(config.PDFToText.Binary) == "" {
		return fmt.Errorf("pdftotext.binary must not be empty")
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
