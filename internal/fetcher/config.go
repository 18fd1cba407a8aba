package fetcher

import (
	"net/http"
	"time"

	"github.com/apex/log"
)

// DefaultTimeout is the default timeout for fetching the list.
const DefaultTimeout = 30 * time.Second

// Config contains configuration for [GetRaw].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [*http.Client] to use.
	Client *http.Client

	// Logger is the MANDATORY logger to use.
	Logger log.Interface

	// Timeout is the OPTIONAL timeout for the whole request. When
	// zero or negative, we use [DefaultTimeout].
	Timeout time.Duration

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
