package monitoring

import (
	"context"
	"errors"
	"time"
)

// Operation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Timer measures operation duration
type Timer struct {
	start     time.Time
	metrics   *Metrics
	operation string
}

// NewTimer creates a new timer. A nil metrics makes Stop a no-op.
func NewTimer(metrics *Metrics, operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		metrics:   metrics,
		operation: operation,
	}
}

// Stop stops the timer and records the duration under the outcome of err
func (t *Timer) Stop(err error) {
	if t == nil || t.metrics == nil {
		return
	}
	t.metrics.OperationDuration.
		WithLabelValues(t.operation, Outcome(err)).
		Observe(time.Since(t.start).Seconds())
}

// Outcome classifies err as an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
