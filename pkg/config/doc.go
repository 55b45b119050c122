// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags). Load caches one value per
// configuration type for the process lifetime; Parse always reads afresh and
// accepts an explicit variable map, which keeps tests free of os.Setenv.
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"vibecoders-site"`
//		Locale  string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
//	cfg, err := config.Parse[Config](config.WithEnvironment(map[string]string{
//		"DEFAULT_LOCALE": "ko",
//	}))
package config
