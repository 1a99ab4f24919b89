package testutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockRoundTripper is a mock implementation of http.RoundTripper.
type MockRoundTripper struct {
	mock.Mock
}

// RoundTrip mocks the RoundTrip method.
func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockRoundTripper creates a mock that fails the test on unexpected calls
// and checks expectations at cleanup.
func NewMockRoundTripper(t *testing.T) *MockRoundTripper {
	t.Helper()
	m := new(MockRoundTripper)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
