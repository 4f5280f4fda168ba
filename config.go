package smscodec

import (
	"fmt"
	"log/slog"

	"github.com/nyaruka/ezconf"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/utils"
)

// Config is our top level configuration object
type Config struct {
	Address         string `help:"the network interface address we will bind to"`
	Port            int    `help:"the port we will listen on" validate:"min=1,max=65535"`
	SentryDSN       string `help:"the DSN used for logging errors to Sentry"`
	LogLevel        string `help:"the logging level to use" validate:"oneof=debug info warn error"`
	Version         string `help:"the version shown on the index page"`
	MaxBodyBytes    int64  `help:"the maximum size of request bodies we will read" validate:"min=1"`
	DefaultEncoding string `help:"the encoding used when a request doesn't specify one (gsm7 or utf16)"`
}

// NewConfig returns a new default configuration object
func NewConfig() *Config {
	return &Config{
		Address:         "",
		Port:            8080,
		LogLevel:        "error",
		Version:         "Dev",
		MaxBodyBytes:    100000,
		DefaultEncoding: "gsm7",
	}
}

// LoadConfig loads our configuration from the passed in filename
func LoadConfig(filename string) *Config {
	config := NewConfig()
	loader := ezconf.NewLoader(
		config,
		"smscodec", "SMS Codec - encodes, decodes and segments SMS text",
		[]string{filename},
	)

	loader.MustLoad()
	return config
}

// Validate validates the config
func (c *Config) Validate() error {
	if err := utils.Validate(c); err != nil {
		return err
	}

	if _, err := models.ParseEncoding(c.DefaultEncoding); err != nil {
		return fmt.Errorf("unable to parse 'DefaultEncoding': %w", err)
	}
	return nil
}

// ParseLogLevel returns the configured log level
func (c *Config) ParseLogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// Encoding returns the configured default encoding
func (c *Config) Encoding() models.Encoding {
	enc, err := models.ParseEncoding(c.DefaultEncoding)
	if err != nil {
		return models.EncodingGSM7
	}
	return enc
}
