// Package config loads client configuration from environment variables.
//
// All variables share the RUSTENBERG_ prefix:
//   - RUSTENBERG_SERVICE_URL (required): base URL of the conversion service
//   - RUSTENBERG_TIMEOUT: per-request timeout, e.g. "30s" (0 disables it)
//   - RUSTENBERG_USER_AGENT: User-Agent sent with every request
//   - RUSTENBERG_LOG_LEVEL, RUSTENBERG_LOG_DEV: logger settings
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.ServiceURL)
package config
