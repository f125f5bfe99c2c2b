package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	DBPath            string        `envconfig:"DB_PATH" default:"data/reddot.db"`
	SecretKey         string        `envconfig:"SECRET_KEY" default:"change_me_in_production"`
	Timezone          string        `envconfig:"TZ" default:"UTC"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	PredictionURL     string        `envconfig:"PREDICTION_SERVICE_URL" default:""`
	PredictionTimeout time.Duration `envconfig:"PREDICTION_TIMEOUT" default:"5s"`
	ReminderDays      int           `envconfig:"REMINDER_DAYS" default:"2"`
	ReminderInterval  time.Duration `envconfig:"REMINDER_INTERVAL" default:"6h"`
	RemindersEnabled  bool          `envconfig:"REMINDERS_ENABLED" default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from environment: %w", err)
	}
	return cfg, nil
}
