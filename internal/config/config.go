package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	Telegram *telegramConfig
}

type dbConfig struct {
	// пустой DSN — работаем без БД на встроенном прайсе
	DSN string `envconfig:"DATABASE_URL" default:""`
}

type svcConfig struct {
	Address         string        `envconfig:"STUDIO_ADDRESS" default:":3040"`
	LogLevel        string        `envconfig:"STUDIO_LOG_LEVEL" default:"info"`
	ContactURL      string        `envconfig:"STUDIO_CONTACT_URL" default:"https://t.me/nikita_delo"`
	SessionTTL      time.Duration `envconfig:"STUDIO_SESSION_TTL" default:"30m"`
	SessionCapacity int           `envconfig:"STUDIO_SESSION_CAPACITY" default:"10000"`
	CookieSecure    bool          `envconfig:"STUDIO_COOKIE_SECURE" default:"false"`
	CORSOrigins     []string      `envconfig:"STUDIO_CORS_ORIGINS" default:"*"`
	Admin           Admin
}

type Admin struct {
	User         string `envconfig:"STUDIO_ADMIN_USER" default:"admin"`
	PasswordHash string `envconfig:"STUDIO_ADMIN_PASSWORD_HASH" default:""`
}

type telegramConfig struct {
	BotToken   string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	ChatID     string `envconfig:"TELEGRAM_CHAT_ID" default:""`
	APIBaseURL string `envconfig:"TELEGRAM_API_BASE_URL" default:"https://api.telegram.org"`
}

// New читает конфиг из окружения, значения по умолчанию — в тегах
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
