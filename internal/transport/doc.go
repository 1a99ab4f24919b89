// Package transport sends requests to the conversion service.
//
// It wraps a resty client with the pieces every call shares:
//   - Default headers (User-Agent plus caller-supplied extras)
//   - Request ID propagation through the X-Request-ID header
//   - Debug logging of each call and warn logging of failures
//   - Optional Prometheus instrumentation of the round trip
//
// Responses with a status of 400 or above become *HTTPError values carrying
// the response body. Transport failures are returned as the HTTP client
// reported them, so errors.Is(err, context.Canceled) holds after cancellation.
//
// Example Usage:
//
//	c := transport.New(transport.Config{UserAgent: "rustenberg-go"})
//	body, err := c.Post(ctx, "conversion.url", url, form)
//	if err != nil {
//	    return err
//	}
//	defer body.Close()
package transport
