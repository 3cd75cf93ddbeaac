package config

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Name string
	Env  string
	Port string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Warn().Msg("APP_ENV not set, defaulting to development")
		}
		name := os.Getenv("APP_NAME")
		if name == "" {
			name = "career-compass"
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":3000"
		}
		appConfig = &AppConfig{
			Name: name,
			Env:  env,
			Port: port,
		}
	})
	return appConfig
}
