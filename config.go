package techquiry

import (
	"github.com/spf13/viper"
)

// Application defaults, matching the stock TechQuiry deployment.
const (
	DefaultPort         = 8080
	DefaultDatabaseFile = "techquiry.db"
)

// Config holds the application settings.
type Config struct {
	Port         int
	DatabaseFile string
	Debug        bool
}

// LoadConfig reads settings from an optional .env file and the process
// environment, applying defaults for anything missing.
func LoadConfig() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DATABASE_FILE", DefaultDatabaseFile)
	v.SetDefault("DEBUG", false)

	// Missing config file is fine, defaults and env vars apply.
	_ = v.ReadInConfig()

	return &Config{
		Port:         v.GetInt("PORT"),
		DatabaseFile: v.GetString("DATABASE_FILE"),
		Debug:        v.GetBool("DEBUG"),
	}
}
