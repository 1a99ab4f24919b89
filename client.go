package rustenberg

import (
	"context"
	"fmt"
	"sync"

	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/rustenberg/internal/shared/paths"
	"github.com/GriffinCanCode/rustenberg/internal/transport"
	"go.uber.org/zap"
)

// Client talks to one conversion service. It is safe for concurrent use.
type Client struct {
	root      paths.Base
	transport *transport.Client
	logger    *zap.Logger

	conversionsOnce sync.Once
	conversions     *ConversionService

	manipulationsOnce sync.Once
	manipulations     *ManipulationService
}

// ServiceInfo describes the running service
type ServiceInfo struct {
	Version string `json:"version"`
}

// NewClient validates options and builds a client.
func NewClient(options Options) (*Client, error) {
	opts, err := options.normalize()
	if err != nil {
		return nil, err
	}

	var metrics *monitoring.Metrics
	if opts.Registerer != nil {
		metrics, err = monitoring.NewMetrics(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("rustenberg: register metrics: %w", err)
		}
	}

	return &Client{
		root: paths.New(opts.ServiceURL, ""),
		transport: transport.New(transport.Config{
			UserAgent:  opts.UserAgent,
			Timeout:    opts.Timeout,
			Headers:    opts.Headers,
			HTTPClient: opts.HTTPClient,
			Logger:     opts.Logger,
			Metrics:    metrics,
		}),
		logger: opts.Logger,
	}, nil
}

// ServiceURL returns the normalized base URL
func (c *Client) ServiceURL() string {
	return c.root.String()
}

// Conversions returns the client for the conversion resource.
func (c *Client) Conversions() *ConversionService {
	c.conversionsOnce.Do(func() {
		c.conversions = &ConversionService{resource: c.resource("conversion")}
	})
	return c.conversions
}

// Manipulations returns the client for the manipulation resource.
func (c *Client) Manipulations() *ManipulationService {
	c.manipulationsOnce.Do(func() {
		c.manipulations = &ManipulationService{resource: c.resource("manipulation")}
	})
	return c.manipulations
}

// GetServiceInfo fetches the service's metadata from its root URL.
func (c *Client) GetServiceInfo(ctx context.Context) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.transport.GetJSON(ctx, "info", c.root.URL(""), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) resource(segment string) resource {
	return resource{
		name:      segment,
		base:      paths.New(c.root.String(), segment),
		transport: c.transport,
		logger:    c.logger,
	}
}

// WithRequestID returns a context whose calls send requestID as the
// X-Request-ID header. Calls without one get a generated ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return tracing.WithRequestID(ctx, requestID)
}
