// Package stream adapts streamed response bodies into in-memory buffers.
package stream

import (
	"bytes"
	"io"
)

// Collector accumulates every chunk written to it, in arrival order.
// A Collector is not safe for concurrent writers.
type Collector struct {
	buf bytes.Buffer
}

// Write appends p to the collected bytes. It never fails.
func (c *Collector) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// Bytes returns the collected bytes.
func (c *Collector) Bytes() []byte {
	return c.buf.Bytes()
}

// Drain reads r until EOF and returns everything it produced. If reading
// fails part way through, the partial data is discarded and only the error
// is returned.
func Drain(r io.Reader) ([]byte, error) {
	var c Collector
	if _, err := io.Copy(&c, r); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}
