// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production builds
// since it's not imported in any production code.
package mocks
