/*
Package tracing propagates request identifiers from a caller's context onto
outgoing service calls.

# Overview

Every call to the conversion service carries an X-Request-ID header. Callers
that already have an identifier (for example from an inbound request they are
serving) attach it to the context; otherwise a fresh req_<ulid> identifier is
generated per call. The identifier is also attached to log entries so client
and service logs can be correlated.

# Usage

	ctx = tracing.WithRequestID(ctx, "req_01HZX...")

	ctx, reqID := tracing.Ensure(ctx)
	tracing.Inject(ctx, req.Header)
*/
package tracing
