package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the vault bot.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"vault-bot"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"VAULT_OPS_PORT" envDefault:"8092"`
	LogLevel        string        `env:"VAULT_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"VAULT_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Telegram transport
	BotToken string `env:"BOT_TOKEN,notEmpty"`
	// APITimeout bounds every Bot API call, including the long poll, so it
	// must exceed PollTimeout.
	APITimeout  time.Duration `env:"TELEGRAM_API_TIMEOUT" envDefault:"50s"`
	PollTimeout int           `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"30"`
	// HandlerTimeout bounds one unit of work end to end.
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" envDefault:"45s"`

	// Archive destination all media is relayed into.
	ArchiveChatRaw string `env:"PRIVATE_CHANNEL_ID,notEmpty"`
	// Fixed introductory media forwarded to newly onboarded users.
	WelcomeMediaChatRaw string `env:"WELCOME_MEDIA_CHAT" envDefault:"@sourceui"`
	WelcomeMediaID      int    `env:"WELCOME_MEDIA_MESSAGE_ID" envDefault:"5"`

	// Database
	DatabaseURL    string        `env:"DATABASE_URL,notEmpty"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Parsed once at startup from the raw identifiers above.
	ArchiveChat      ChatRef `env:"-"`
	WelcomeMediaChat ChatRef `env:"-"`
}

// Load parses environment variables into Config and normalizes the chat
// identifiers.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	archive, err := ParseChatRef(cfg.ArchiveChatRaw)
	if err != nil {
		return nil, fmt.Errorf("PRIVATE_CHANNEL_ID: %w", err)
	}
	cfg.ArchiveChat = archive

	welcome, err := ParseChatRef(cfg.WelcomeMediaChatRaw)
	if err != nil {
		return nil, fmt.Errorf("WELCOME_MEDIA_CHAT: %w", err)
	}
	cfg.WelcomeMediaChat = welcome

	if cfg.PollTimeout < 1 {
		return nil, fmt.Errorf("TELEGRAM_POLL_TIMEOUT must be at least 1 second")
	}
	if cfg.APITimeout <= time.Duration(cfg.PollTimeout)*time.Second {
		return nil, fmt.Errorf("TELEGRAM_API_TIMEOUT (%s) must exceed the long poll timeout (%ds)", cfg.APITimeout, cfg.PollTimeout)
	}

	return cfg, nil
}

// Addr returns the operational HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
