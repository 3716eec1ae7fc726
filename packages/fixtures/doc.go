// Package fixtures loads HTML fixtures and hosts them in the document under
// test.
//
// It provides:
//   - A process-wide content cache keyed by logical fixture path
//   - A loader that resolves paths against a base path and fetches misses
//     synchronously through a transport
//   - The fixture container: a single well-known element appended to <body>,
//     replaced on every Set or Load and removed by CleanUp
//   - Sandboxes: detached, attribute-configured elements owned by the caller
//
// The cache is never cleared implicitly. Only ClearCache drops entries.
package fixtures
