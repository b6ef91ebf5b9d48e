// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrAPIURL       = errors.New("environment variable API_URL must be a valid URL")
	ErrGinMode      = errors.New("environment variable GIN_MODE must be one of debug, release or test")
	ErrLogFormat    = errors.New("environment variable LOG_FORMAT must be either human or json")
	ErrAdvisorURL   = errors.New("environment variable ADVISOR_URL must be a valid URL")
	ErrNewsURL      = errors.New("environment variable NEWS_URL must be a valid URL")
	ErrDuration     = errors.New("durations must be positive")
	ErrDataDirEmpty = errors.New("environment variable DATA_DIR must not be empty")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           url.URL       `env:"API_URL,required"`
	Port             string        `env:"PORT" envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`
	LogFormat        string        `env:"LOG_FORMAT"`
	CorsAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof      bool          `env:"ENABLE_PPROF"`
	DataDir          string        `env:"DATA_DIR" envDefault:"data"`
	AdvisorURL       string        `env:"ADVISOR_URL"`
	AdvisorTimeout   time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"30s"`
	NewsURL          string        `env:"NEWS_URL" envDefault:"https://api.marketaux.com"`
	NewsAPIToken     string        `env:"NEWS_API_TOKEN"`
	MarketTick       time.Duration `env:"MARKET_TICK" envDefault:"5s"`
}

// Load reads a .env file from the working directory if there is one and
// parses the environment.
func Load() (Config, error) {
	// A missing .env file is fine, the environment can be set directly
	_ = godotenv.Load()

	return Parse()
}

// Parse parses the environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks all values and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, ErrAPIURL)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, ErrGinMode)
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, ErrLogFormat)
	}

	if c.AdvisorURL != "" && !validURL(c.AdvisorURL) {
		errs = append(errs, ErrAdvisorURL)
	}

	if c.NewsURL != "" && !validURL(c.NewsURL) {
		errs = append(errs, ErrNewsURL)
	}

	if c.AdvisorTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: ADVISOR_TIMEOUT is %s", ErrDuration, c.AdvisorTimeout))
	}

	if c.MarketTick <= 0 {
		errs = append(errs, fmt.Errorf("%w: MARKET_TICK is %s", ErrDuration, c.MarketTick))
	}

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, ErrDataDirEmpty)
	}

	return errors.Join(errs...)
}

// HumanLogs reports if logs should be written for humans instead of as JSON.
// Without an explicit LOG_FORMAT, debug mode logs for humans.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// NewsEnabled reports if financial news can be fetched.
func (c Config) NewsEnabled() bool {
	return c.NewsURL != "" && c.NewsAPIToken != ""
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
