/*
Package monitoring provides Prometheus metrics for outgoing service calls.

# Overview

Metrics are opt-in: a client built without a prometheus.Registerer carries a
nil *Metrics and records nothing. With a registerer, two layers are measured:

- Transport: every HTTP round trip (count, latency and in-flight requests by
  status code and method) via promhttp round-tripper instrumentation
- Operation: every client operation such as "conversion.url" (latency by
  outcome), including failures that never reach the wire

# Usage

	metrics, err := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
	    return err
	}

	httpClient.Transport = metrics.InstrumentRoundTripper(httpClient.Transport)

	timer := monitoring.NewTimer(metrics, "manipulation.merge")
	// ... perform operation ...
	timer.Stop(err)

Registering twice against the same registerer reuses the collectors that are
already there, so several clients may share one registry.
*/
package monitoring
