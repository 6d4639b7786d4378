package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config holds the connection settings for a Fluent Bit collector.
type Config struct {
	Host      string // "127.0.0.1", or "fluent-bit" inside Docker
	Port      int    // usually 24224
	TagPrefix string // common tag prefix for all logs of this service
}

// NewClient creates a client for Fluent Bit. Creation succeeding does not
// guarantee a connection; errors surface on the first post.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return logger, nil
}
