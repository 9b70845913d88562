package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address          string        `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	Database         string        `env:"DATABASE_URI"       envDefault:""`
	LogLvl           string        `env:"LOG_LVL"            envDefault:"info"`
	AdminIDs         []int64       `env:"ADMIN_IDS"          envSeparator:","`
	MaxPaymentAmount int           `env:"MAX_PAYMENT_AMOUNT" envDefault:"10000"`
	BotToken         string        `env:"BOT_TOKEN"          envDefault:""`
	AdminChatID      int64         `env:"ADMIN_CHAT_ID"      envDefault:"0"`
	ReminderSchedule string        `env:"REMINDER_SCHEDULE"  envDefault:"*/10 * * * *"`
	ReminderAge      time.Duration `env:"REMINDER_AGE"       envDefault:"30m"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN (empty runs in-memory storage)")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}

// IsAdmin reports whether id is one of the configured administrator identities.
func (c *Config) IsAdmin(id int64) bool {
	for _, adminID := range c.AdminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}
