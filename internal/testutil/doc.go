// Package testutil provides a fake conversion service and mocks for tests.
package testutil
