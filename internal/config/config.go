package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"ivms/internal/schedule"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	// Working day window used by the free-slot generator.
	WorkdayStart string `envconfig:"WORKDAY_START" default:"09:00"`
	WorkdayEnd   string `envconfig:"WORKDAY_END" default:"18:00"`

	// Cron spec for the stale-booking sweep.
	ExpireSchedule string `envconfig:"EXPIRE_SCHEDULE" default:"5 0 * * *"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	SendGrid struct {
		APIKey    string `envconfig:"SENDGRID_API_KEY"`
		FromEmail string `envconfig:"SENDGRID_FROM_EMAIL"`
		FromName  string `envconfig:"SENDGRID_FROM_NAME" default:"IVMS Reception"`
	}

	Twilio struct {
		AccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
		AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
		FromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
	}
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if _, err := cfg.Workday(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Workday returns the configured working-day interval.
func (c *Config) Workday() (schedule.Interval, error) {
	start, err := schedule.ParseTimeOfDay(c.WorkdayStart)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("WORKDAY_START: %w", err)
	}
	end, err := schedule.ParseTimeOfDay(c.WorkdayEnd)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("WORKDAY_END: %w", err)
	}
	day := schedule.Interval{Start: start, End: end}
	if !day.Valid() {
		return schedule.Interval{}, fmt.Errorf("working day %s-%s is empty", start, end)
	}
	return day, nil
}
