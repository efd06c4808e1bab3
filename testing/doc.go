// Package testing provides helpers for testing code built on
// distributed-nose.
//
// The package offers a types.Logger implementation that routes log output
// through *testing.T, so engine logs show up next to test failures.
package testing
