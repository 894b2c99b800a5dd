package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
// Los secrets de JWT y el DSN son obligatorios: si faltan el proceso no arranca.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	AccessSecret  string `env:"JWT_ACCESS_SECRET,required"`
	RefreshSecret string `env:"JWT_REFRESH_SECRET,required"`
	AccessTTLMin  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	RefreshTTLHrs int    `env:"JWT_REFRESH_TTL_HOURS" envDefault:"168"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction indica si el servicio corre en ambiente productivo.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
