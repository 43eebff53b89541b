package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio, cargada una sola vez
// en el arranque. Los handlers la reciben por constructor; no hay globals.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	SecretKey string `env:"SECRET_KEY"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"mivet-auth"`
	DB        DB     `envPrefix:"DB_"`
}

// DB contiene los parámetros de conexión al Store relacional.
type DB struct {
	Host string `env:"HOST"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	Name string `env:"NAME"`
	Port string `env:"PORT" envDefault:"5432"`
}

// Configured indica si hay parámetros de DB. Sin ellos el router
// cae al store in-memory (modo dev).
func (d DB) Configured() bool {
	return d.Host != ""
}

// DSN arma la cadena de conexión Postgres a partir de las partes.
func (d DB) DSN() string {
	if !d.Configured() {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// New carga .env (si existe) y luego el entorno del proceso.
// Falla rápido si falta SECRET_KEY: sin clave de firma no se puede
// emitir ningún token y arrancar no tiene sentido.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is required")
	}

	return &cfg, nil
}
