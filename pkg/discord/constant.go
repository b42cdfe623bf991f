package discord

import "time"

const (
	// DefaultBaseURL is the Discord webhook API root.
	DefaultBaseURL = "https://discord.com/api/webhooks"

	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 1
	defaultRetryDelay = 500 * time.Millisecond
	defaultUsername   = "report-srv"

	// maxDescriptionLength is Discord's embed description limit.
	maxDescriptionLength = 4096
)

var colorByType = map[MessageType]int{
	MessageTypeInfo:    0x3498db,
	MessageTypeSuccess: 0x2ecc71,
	MessageTypeWarning: 0xf1c40f,
	MessageTypeError:   0xe74c3c,
}

// DefaultConfig returns the default Discord Config.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         defaultTimeout,
		RetryCount:      defaultRetryCount,
		RetryDelay:      defaultRetryDelay,
		DefaultUsername: defaultUsername,
	}
}
