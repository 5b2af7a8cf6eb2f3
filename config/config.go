package config

import (
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/getidex/idex/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// defaultConfig fills in any options left unset by the config file and
// environment after unmarshalling.
var defaultConfig = Config{
	Server: ServerConfig{
		Port:        8000,
		MaxUploadMB: 10,
	},
	Log: LogConfig{
		Level: "info",
	},
	DocAI: DocAIConfig{
		Location:         "us",
		ProcessorVersion: "pretrained-foundation-model-v1.5-pro-2025-06-20",
	},
	Gemini: GeminiConfig{
		Model: "gemini-1.5-flash",
	},
}

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("IDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	err := viper.BindEnv("gemini.api_key", "IDEX_GEMINI_API_KEY")
	if err != nil {
		log.Fatalf("Error binding environment variable: %s", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&cfg, defaultConfig); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the assembled config for missing or out-of-range values
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
