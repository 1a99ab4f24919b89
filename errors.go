package rustenberg

import (
	"errors"

	"github.com/GriffinCanCode/rustenberg/internal/transport"
)

// ErrMissingServiceURL is returned by NewClient when no service URL is set.
var ErrMissingServiceURL = errors.New("rustenberg: missing service url")

// HTTPError is returned when the service answers with a status of 400 or
// above. Body holds the response text, usually the service's reason.
type HTTPError = transport.HTTPError
