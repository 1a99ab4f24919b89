package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GriffinCanCode/rustenberg/internal/form"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/logging"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/tracing"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"
)

// Config configures a Client
type Config struct {
	UserAgent  string
	Timeout    time.Duration
	Headers    map[string]string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *monitoring.Metrics
}

// Client wraps resty with the service's error and logging conventions
type Client struct {
	resty   *resty.Client
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// New creates a client. A supplied HTTPClient is copied, never mutated.
func New(cfg Config) *Client {
	var hc *http.Client
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		hc = &copied
	} else {
		hc = &http.Client{Transport: cleanhttp.DefaultPooledTransport()}
	}
	hc.Transport = cfg.Metrics.InstrumentRoundTripper(hc.Transport)

	logger := logging.OrNop(cfg.Logger)

	r := resty.NewWithClient(hc).
		SetLogger(logger.Sugar()).
		SetHeaders(cfg.Headers)
	if cfg.UserAgent != "" {
		r.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &Client{
		resty:   r,
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// Post sends body as multipart/form-data and returns the response stream.
// The caller must close it.
func (c *Client) Post(ctx context.Context, operation, url string, body *form.Body) (_ io.ReadCloser, err error) {
	timer := monitoring.NewTimer(c.metrics, operation)
	defer func() { timer.Stop(err) }()

	ctx, _ = tracing.Ensure(ctx)
	start := time.Now()
	fields := multipartFields(body)

	resp, err := c.request(ctx).
		SetDoNotParseResponse(true).
		SetMultipartFields(fields...).
		Post(url)
	if err != nil {
		c.logFailure(ctx, operation, url, start, err)
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return nil, err
	}

	raw := resp.RawBody()
	if resp.IsError() {
		err = c.readError(resp.StatusCode(), resp.Status(), raw)
		c.logFailure(ctx, operation, url, start, err)
		return nil, err
	}

	c.logger.Debug("service call",
		tracing.Field(ctx),
		zap.String("operation", operation),
		zap.String("url", url),
		zap.Int("parts", len(fields)),
		zap.Int("files", countFiles(body)),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return raw, nil
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, operation, url string, out any) (err error) {
	timer := monitoring.NewTimer(c.metrics, operation)
	defer func() { timer.Stop(err) }()

	ctx, _ = tracing.Ensure(ctx)
	start := time.Now()

	resp, err := c.request(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		c.logFailure(ctx, operation, url, start, err)
		return err
	}
	if resp.IsError() {
		err = &HTTPError{StatusCode: resp.StatusCode(), Status: resp.Status(), Body: string(resp.Body())}
		c.logFailure(ctx, operation, url, start, err)
		return err
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}

	c.logger.Debug("service call",
		tracing.Field(ctx),
		zap.String("operation", operation),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.resty.R().SetContext(ctx)
	tracing.Inject(ctx, req.Header)
	return req
}

// readError drains and closes an error response body.
func (c *Client) readError(code int, status string, body io.ReadCloser) *HTTPError {
	httpErr := &HTTPError{StatusCode: code, Status: status}
	if body == nil {
		return httpErr
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		c.logger.Warn("failed to read error response body", zap.Error(err))
	}
	httpErr.Body = string(data)
	return httpErr
}

func (c *Client) logFailure(ctx context.Context, operation, url string, start time.Time, err error) {
	c.logger.Warn("service call failed",
		tracing.Field(ctx),
		zap.String("operation", operation),
		zap.String("url", url),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)
}

// multipartFields converts parts to resty fields, preserving order. Parts
// without a file name are sent as plain text values.
func multipartFields(body *form.Body) []*resty.MultipartField {
	if body == nil {
		return nil
	}
	parts := body.Parts()
	fields := make([]*resty.MultipartField, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, &resty.MultipartField{
			Param:       p.Name,
			FileName:    p.FileName,
			ContentType: p.ContentType,
			Reader:      bytes.NewReader(p.Content),
		})
	}
	return fields
}

func countFiles(body *form.Body) int {
	if body == nil {
		return 0
	}
	n := 0
	for _, p := range body.Parts() {
		if p.IsFile() {
			n++
		}
	}
	return n
}
