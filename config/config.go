package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Addr           string   `env:"ADDR" envDefault:":3001"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	WinScore       int      `env:"WIN_SCORE" envDefault:"20"`
	Debug          bool     `env:"DEBUG" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
