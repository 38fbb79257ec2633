// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs. Each configuration
// type is parsed once and cached for the life of the process.
//
//	type AppConfig struct {
//	    BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
//	}
//
//	var app AppConfig
//	if err := config.Load(&app); err != nil {
//	    return err
//	}
//
// LoadEnv loads specific .env files before parsing; without arguments it
// loads .env from the working directory, which Load also does on first use.
// MustLoad and MustLoadEnv panic instead of returning errors.
//
// Errors wrap ErrParsingConfig, ErrNilPointer or ErrConfigNotLoaded. Tests
// reset state with ResetCache or ForceReloadConfig.
package config
