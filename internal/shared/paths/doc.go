// Package paths joins service URLs with resource paths.
//
// Every endpoint of the conversion service is addressed by joining the
// configured service URL with one or more relative segments. Joining is
// purely textual: exactly one slash separates base and path, and the result
// never ends with a slash.
//
// # Usage
//
//	import "github.com/GriffinCanCode/rustenberg/internal/shared/paths"
//
//	paths.Join("http://host/", "conversion/") // http://host/conversion
//
//	conversion := paths.New("http://host", "conversion")
//	conversion.URL("url") // http://host/conversion/url
package paths
