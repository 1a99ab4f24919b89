package rustenberg

import (
	"fmt"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/config"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = config.DefaultUserAgent

// Options configures a Client. Only ServiceURL is required.
type Options struct {
	// ServiceURL is the base URL of the service, e.g. "http://localhost:8000".
	ServiceURL string

	// Timeout bounds each request including reading the body. Zero means no
	// timeout beyond the context.
	Timeout time.Duration

	UserAgent string

	// Headers are sent with every request.
	Headers map[string]string

	// HTTPClient replaces the default pooled client. It is copied, not
	// modified.
	HTTPClient *http.Client

	// Logger receives debug logs per call and warn logs per failure. Nil
	// disables logging.
	Logger *zap.Logger

	// Registerer enables Prometheus client metrics when set.
	Registerer prometheus.Registerer
}

// OptionsFromEnv reads options from RUSTENBERG_* environment variables. A
// logger is built when RUSTENBERG_LOG_LEVEL is set.
func OptionsFromEnv() (Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		ServiceURL: cfg.ServiceURL,
		Timeout:    cfg.Timeout,
		UserAgent:  cfg.UserAgent,
	}

	if cfg.Level != "" {
		logger, err := logging.New(logging.Config{
			Level:       cfg.Level,
			Development: cfg.Development,
		})
		if err != nil {
			return Options{}, fmt.Errorf("failed to build logger: %w", err)
		}
		opts.Logger = logger
	}

	return opts, nil
}

// normalize validates o and returns a copy with defaults applied.
func (o Options) normalize() (Options, error) {
	o.ServiceURL = strings.TrimSpace(o.ServiceURL)
	if o.ServiceURL == "" {
		return Options{}, ErrMissingServiceURL
	}
	if o.Timeout < 0 {
		return Options{}, fmt.Errorf("rustenberg: negative timeout %s", o.Timeout)
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	o.Headers = maps.Clone(o.Headers)
	o.Logger = logging.OrNop(o.Logger)
	return o, nil
}
