package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatReport(report *Report) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n", bold("Checking: "+report.BasePath))
	fmt.Fprintf(f.writer, "\n")

	for _, r := range report.Results {
		if r.Err != nil {
			fmt.Fprintf(f.writer, "  %s %s\n", red("✗"), r.Fixture)
			fmt.Fprintf(f.writer, "    %s %v\n", red("→"), r.Err)
			continue
		}

		fmt.Fprintf(f.writer, "  %s %s %s\n", green("✓"), r.Fixture,
			cyan(fmt.Sprintf("(%d elements, %dms)", r.Elements, r.Duration.Milliseconds())))

		if f.verbose {
			fmt.Fprintf(f.writer, "    URL:   %s\n", r.URL)
			fmt.Fprintf(f.writer, "    Bytes: %d\n", r.Bytes)
		}
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Fixtures: ")
	if report.Passed() > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d loaded", report.Passed())))
	}
	if report.Failed() > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", report.Failed())))
	}
	fmt.Fprintf(f.writer, "%d total\n", len(report.Results))
	fmt.Fprintf(f.writer, "Time:     %dms\n", report.Duration.Milliseconds())
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("domspec"), version)
}
