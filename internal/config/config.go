// Package config centraliza la configuración de la aplicación. Los valores
// se resuelven con viper: defaults embebidos, sobreescritos por variables
// de entorno.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppName   string `mapstructure:"app_name" validate:"required"`
	Port      int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`

	// DBDSN vacío = repos en memoria con dataset de demostración.
	DBDSN string `mapstructure:"db_dsn"`
}

// Load resuelve la configuración desde defaults y entorno, y la valida.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app_name", "dog-adoption-api")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("db_dsn", "")

	// nombres de env planos, sin prefijo
	_ = v.BindEnv("app_name", "APP_NAME")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")
	_ = v.BindEnv("db_dsn", "DB_DSN")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid: %w", err)
	}

	return cfg, nil
}
