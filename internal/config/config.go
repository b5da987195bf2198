package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort              string        `env:"HTTP_PORT" envDefault:"8080"`
	SpreadsheetID         string        `env:"SPREADSHEET_ID"`
	SheetName             string        `env:"SHEET_NAME" envDefault:"Wishes"`
	GoogleCredentialsJSON string        `env:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string        `env:"GOOGLE_CREDENTIALS_FILE"`
	SheetsTimeout         time.Duration `env:"SHEETS_TIMEOUT" envDefault:"5s"`
	Recipients            []string      `env:"RECIPIENTS" envSeparator:","`
	RedisAddr             string        `env:"REDIS_ADDR"`
	RedisPassword         string        `env:"REDIS_PASSWORD"`
	RedisDB               int           `env:"REDIS_DB" envDefault:"0"`
	SubmitRateWindow      time.Duration `env:"SUBMIT_RATE_WINDOW" envDefault:"1m"`
	SubmitRateMax         int           `env:"SUBMIT_RATE_MAX" envDefault:"5"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
