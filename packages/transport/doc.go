// Package transport fetches raw fixture content for domspec.
//
// A Transport turns a resolved fixture location into a Response:
//   - HTTP fetches over net/http with timeouts, default headers and TLS options
//   - Files reads from the local file system, mapping missing files to 404
//   - Func adapts a plain function, mostly for tests
//
// Every Fetch blocks until the whole body has been read. Callers rely on
// fixture content being available before the call returns.
package transport
