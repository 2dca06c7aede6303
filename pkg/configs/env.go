package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// AppVersion holds the build version injected at startup.
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
	}
	Gemini struct {
		APIKey string `mapstructure:"GEMINI_API_KEY"`
		Model  string `mapstructure:"GEMINI_MODEL"`
	}
	OCR struct {
		Language  string `mapstructure:"OCR_LANGUAGE"`
		UploadDir string `mapstructure:"OCR_UPLOAD_DIR"`
	}
	Auth struct {
		BaseURL string `mapstructure:"AUTH_BASE_URL"`
		APIKey  string `mapstructure:"AUTH_API_KEY"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

func init() {
	// VERSION is set by the Makefile or the deploy environment
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig reads the environment and validates the required variables.
// A missing GEMINI_API_KEY is a startup-time fatal, not a per-request error.
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	requiredEnvVars := []string{
		"PORT",
		"APP_NAME",
		"GEMINI_API_KEY",
	}

	missingVars := []string{}
	for _, envVar := range requiredEnvVars {
		if !viper.IsSet(envVar) {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		log.Fatalf("required environment variables are not set: %s", strings.Join(missingVars, ", "))
	}

	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OCR_LANGUAGE", "tur")
	viper.SetDefault("OCR_UPLOAD_DIR", "uploads")
	viper.SetDefault("AUTH_BASE_URL", "")
	viper.SetDefault("AUTH_API_KEY", "")

	config := &EnvConfig{}
	envMapping := map[string]*string{
		"PORT":           &config.Server.Port,
		"APP_NAME":       &config.Server.AppName,
		"GEMINI_API_KEY": &config.Gemini.APIKey,
		"GEMINI_MODEL":   &config.Gemini.Model,
		"OCR_LANGUAGE":   &config.OCR.Language,
		"OCR_UPLOAD_DIR": &config.OCR.UploadDir,
		"AUTH_BASE_URL":  &config.Auth.BaseURL,
		"AUTH_API_KEY":   &config.Auth.APIKey,
	}

	for key, field := range envMapping {
		*field = viper.GetString(key)
	}

	return config
}

// GetConfig returns the EnvConfig singleton. The environment is loaded on
// the first call and the cached instance is returned afterwards.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("environment loaded (app version: %s)\n", AppVersion)
	})
	return configInstance
}
