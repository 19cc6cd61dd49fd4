// Package testutil provides file helpers and mocks shared by the tests.
package testutil
