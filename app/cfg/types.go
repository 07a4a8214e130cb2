package cfg

type Cfg struct {
	// File locations
	FeedsFile string
	StateFile string
	StateDB   string

	// Delivery configuration
	TelegramBotToken string
	TelegramChatID   string

	// Application configuration
	UserAgent string
	Timeout   int
	DryRun    bool
	Debug     bool
	Version   string
}
