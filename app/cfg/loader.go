package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// File locations
	FeedsFile string `long:"feeds" env:"FEEDS_FILE" default:"./feeds.yml" description:"Path to the feeds configuration file"`
	StateFile string `long:"state" env:"STATE_FILE" default:"./state.json" description:"Path to the JSON state snapshot file"`
	StateDB   string `long:"state-db" env:"STATE_DB" description:"Path to a SQLite state database (replaces the JSON state file when set)"`

	// Delivery configuration
	TelegramBotToken string `long:"telegram-token" env:"TELEGRAM_BOT_TOKEN" description:"Telegram bot token"`
	TelegramChatID   string `long:"telegram-chat" env:"TELEGRAM_CHAT_ID" description:"Telegram chat ID to deliver notifications to"`

	// Application configuration
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"rss-ping/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"FETCH_TIMEOUT" default:"30" description:"Timeout in seconds for fetch and delivery requests"`
	DryRun    bool   `long:"dry-run" env:"DRY_RUN" description:"Log matching entries instead of delivering them"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedsFile:        raw.FeedsFile,
		StateFile:        raw.StateFile,
		StateDB:          raw.StateDB,
		TelegramBotToken: raw.TelegramBotToken,
		TelegramChatID:   raw.TelegramChatID,
		UserAgent:        raw.UserAgent,
		Timeout:          raw.Timeout,
		DryRun:           raw.DryRun,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	return cfg, nil
}
