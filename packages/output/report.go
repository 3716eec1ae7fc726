package output

import (
	"fmt"
	"time"
)

// FixtureResult is the outcome of checking one fixture.
type FixtureResult struct {
	Fixture  string
	URL      string
	Bytes    int
	Elements int
	Duration time.Duration
	Err      error
}

// Passed reports whether the fixture was loaded.
func (r FixtureResult) Passed() bool {
	return r.Err == nil
}

// Report collects the results of one check run.
type Report struct {
	BasePath string
	Results  []FixtureResult
	Duration time.Duration
}

// Passed returns the number of fixtures that loaded.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

// Failed returns the number of fixtures that could not be loaded.
func (r *Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// Formatter renders reports.
type Formatter interface {
	FormatReport(report *Report)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable is implemented by formatters that write everything at the end.
type Flushable interface {
	Flush() error
}

// Format names accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatTAP     = "tap"
)

// Options are the settings shared by every formatter.
type Options struct {
	Verbose bool
	NoColor bool
}

// New returns the formatter for name, writing to stdout.
func New(name string, opts Options) (Formatter, error) {
	switch name {
	case "", FormatConsole:
		return NewConsoleFormatter(WithVerbose(opts.Verbose), WithNoColor(opts.NoColor)), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatTAP:
		return NewTAPFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console, json or tap)", name)
	}
}
