package rustenberg

import (
	"context"
	"io"

	"github.com/GriffinCanCode/rustenberg/internal/form"
	"github.com/GriffinCanCode/rustenberg/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/rustenberg/internal/shared/paths"
	"github.com/GriffinCanCode/rustenberg/internal/stream"
	"github.com/GriffinCanCode/rustenberg/internal/transport"
	"go.uber.org/zap"
)

// resource holds what every resource client shares: its base URL and the
// transport.
type resource struct {
	name      string
	base      paths.Base
	transport *transport.Client
	logger    *zap.Logger
}

// post sends body to the operation path under the resource.
func (r resource) post(ctx context.Context, op string, body *form.Body) (io.ReadCloser, error) {
	return r.transport.Post(ctx, r.operation(op), r.base.URL(op), body)
}

// collect drains a streamed call into memory.
func (r resource) collect(ctx context.Context, rc io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			r.logger.Warn("failed to close response body", tracing.Field(ctx), zap.Error(cerr))
		}
	}()
	return stream.Drain(rc)
}

func (r resource) operation(op string) string {
	return r.name + "." + op
}
