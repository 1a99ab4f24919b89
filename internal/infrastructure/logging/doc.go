// Package logging builds the zap loggers used by the client.
//
// Two encodings are available:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for humans
//
// The client logs every service call at debug level and failed calls at warn
// level, so "info" keeps a production log quiet while "debug" traces each
// request.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug"})
//	logger.Debug("service call", zap.String("url", url))
package logging
