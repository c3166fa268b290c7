package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	RechargeAmount    int64 `env:"RECHARGE_AMOUNT" envDefault:"100"`
	SessionTTLMinutes int   `env:"SESSION_TTL_MINUTES" envDefault:"120"`

	AdminEmail        string `env:"ADMIN_EMAIL"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	BookmakerEmail    string `env:"BOOKMAKER_EMAIL"`
	BookmakerPassword string `env:"BOOKMAKER_PASSWORD"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
