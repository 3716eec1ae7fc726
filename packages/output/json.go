package output

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Summary  JSONSummary   `json:"summary"`
	Fixtures []JSONFixture `json:"fixtures"`
	Duration float64       `json:"duration"`
	Time     string        `json:"time"`
}

// JSONSummary represents the check summary
type JSONSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// JSONFixture represents a single fixture result
type JSONFixture struct {
	Fixture  string  `json:"fixture"`
	URL      string  `json:"url"`
	Passed   bool    `json:"passed"`
	Bytes    int     `json:"bytes"`
	Elements int     `json:"elements"`
	Duration float64 `json:"duration"`
	Error    string  `json:"error,omitempty"`
}

// JSONFormatter formats check reports as JSON
type JSONFormatter struct {
	writer   io.Writer
	summary  JSONSummary
	fixtures []JSONFixture
	duration time.Duration
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer:   os.Stdout,
		fixtures: make([]JSONFixture, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatReport(report *Report) {
	for _, r := range report.Results {
		fixture := JSONFixture{
			Fixture:  r.Fixture,
			URL:      r.URL,
			Passed:   r.Passed(),
			Bytes:    r.Bytes,
			Elements: r.Elements,
			Duration: float64(r.Duration.Milliseconds()),
		}
		if r.Err != nil {
			fixture.Error = r.Err.Error()
		}
		f.fixtures = append(f.fixtures, fixture)
	}
	f.summary.Total += len(report.Results)
	f.summary.Passed += report.Passed()
	f.summary.Failed += report.Failed()
	f.duration += report.Duration
}

func (f *JSONFormatter) FormatError(err error) {
	// Reported as a failed summary with no fixtures
	f.summary.Failed++
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush() error {
	output := JSONOutput{
		Summary:  f.summary,
		Fixtures: f.fixtures,
		Duration: float64(f.duration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
