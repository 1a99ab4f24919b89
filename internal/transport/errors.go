package transport

import "fmt"

// HTTPError is returned when the service answers with a status of 400 or
// above.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Body)
}
