package cmd

import "time"

// Config carries every runtime setting the service needs. Values come from
// the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// TransportAPIURL is the base URL of the messaging transport API,
	// without the bot token suffix.
	TransportAPIURL      string `env:"TRANSPORT_API_URL" envDefault:"https://api.telegram.org"`
	TransportToken       string `env:"TRANSPORT_TOKEN,required"`
	PaymentProviderToken string `env:"PAYMENT_PROVIDER_TOKEN"`
	OperatorChatID       int64  `env:"OPERATOR_CHAT_ID,required"`

	Currency string `env:"CURRENCY" envDefault:"RUB"`

	// OrderTTL is how long an untouched order survives before the reaper
	// removes it. Zero disables the reaper.
	OrderTTL time.Duration `env:"ORDER_TTL" envDefault:"24h"`

	// DatabaseDSN selects the durable store. Empty keeps orders in memory,
	// which is fine for a single process but loses state on restart.
	DatabaseDSN string `env:"DATABASE_DSN"`
}
