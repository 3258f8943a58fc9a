// Package radionet provides a client for the radio.net directory API.
//
// Example usage:
//
//	import "github.com/jfmyers9/radionet/pkg/radionet"
//
//	client := radionet.NewClient(radionet.Config{
//	    Language: "de-DE",
//	})
//
//	page, err := client.Stations().Search(ctx, "jazz", 50, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Found:", page.TotalCount)
package radionet

import (
	"net/http"
	"sync"
	"time"
)

// Config holds client configuration.
type Config struct {
	Language   string       // Optional: accept-language header (defaults to en-US)
	UserAgent  string       // Optional: user-agent header (defaults to DefaultUserAgent)
	APIKey     string       // Optional: reserved, not sent by current endpoints
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with DefaultTimeout)
	BaseURL    string       // Optional: Base URL for API (defaults to radio.net API, used for testing)
	MaxRetries int          // Optional: attempts per request (defaults to 1, no retry)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for radio.net API operations.
type Client struct {
	mu       sync.RWMutex
	language string

	userAgent  string
	apiKey     string
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     Logger

	stations *StationService
	tags     *TagService
}

const (
	// DefaultBaseURL is the default radio.net API endpoint.
	DefaultBaseURL = "https://prod.radio-api.net"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "Radio.net - Web V5"

	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 10 * time.Second
)

// NewClient creates a new radio.net API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	language := cfg.Language
	if language == "" {
		language = DefaultLocale()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	c := &Client{
		language:   language,
		userAgent:  userAgent,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		logger:     cfg.Logger,
	}

	c.stations = &StationService{client: c}
	c.tags = &TagService{client: c}

	return c
}

// Stations returns the station listing service.
func (c *Client) Stations() *StationService {
	return c.stations
}

// Tags returns the tag listing service.
func (c *Client) Tags() *TagService {
	return c.tags
}

// SetLanguage sets the accept-language header sent with every request.
func (c *Client) SetLanguage(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = locale
}

// Language returns the current accept-language value.
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// APIKey returns the configured API key placeholder.
func (c *Client) APIKey() string {
	return c.apiKey
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
