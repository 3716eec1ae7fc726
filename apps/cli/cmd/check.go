package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/domspec/packages/core/config"
	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/abdul-hamid-achik/domspec/packages/fixtures"
	"github.com/abdul-hamid-achik/domspec/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check [fixture...]",
	Short: "Load fixtures and report whether they parse",
	Long: `Load fixtures through the configured fixtures path and parse each one
into a fixture container, the same way tests do.

Without arguments every .html and .htm file under a local fixtures
directory is checked.

Examples:
  domspec check
  domspec check list.html form.html
  domspec check --path http://localhost:9000/fixtures menu.html
  domspec check --watch`,
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	watchFlag  bool
	outputFlag string
)

func init() {
	checkCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the fixtures directory and re-run on changes")
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("DOMSPEC_OUTPUT", output.FormatConsole), "Output format: console, json, tap (env: DOMSPEC_OUTPUT)")
}

func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	run := func() (*output.Report, error) {
		formatter, err := output.New(strings.ToLower(outputFlag), output.Options{
			Verbose: cfg.Verbose > 0,
			NoColor: cfg.GetNoColor(),
		})
		if err != nil {
			return nil, exitWith(ExitUsageError, err)
		}
		formatter.FormatHeader(version)

		names := args
		if len(names) == 0 {
			names, err = discoverFixtures(cfg.FixturesPath)
			if err != nil {
				formatter.FormatError(err)
				flush(formatter)
				return nil, exitWith(ExitConfigError, err)
			}
		}

		report := checkFixtures(cfg, logger, names)
		formatter.FormatReport(report)
		flush(formatter)
		return report, nil
	}

	report, err := run()
	if err != nil {
		return err
	}

	if !watchFlag {
		if report.Failed() > 0 {
			return exitWith(ExitFixtureFailure, fmt.Errorf("%d of %d fixtures failed", report.Failed(), len(report.Results)))
		}
		return nil
	}

	if isRemote(cfg.FixturesPath) {
		return exitWith(ExitUsageError, fmt.Errorf("--watch needs a local fixtures directory, got %s", cfg.FixturesPath))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")
	return watchFixtures(ctx, cfg.FixturesPath, logger, func(name string) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n\nFixture changed: %s\nRe-checking...\n\n", name)
		if _, err := run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
	})
}

func flush(formatter output.Formatter) {
	if flushable, ok := formatter.(output.Flushable); ok {
		_ = flushable.Flush()
	}
}

// checkFixtures loads each fixture into a fresh document through a loader
// with an empty cache.
func checkFixtures(cfg *config.Config, logger *zap.Logger, names []string) *output.Report {
	start := time.Now()
	loader := newLoader(cfg, logger)
	fx := fixtures.New(dom.NewDocument(), loader,
		fixtures.WithContainerID(cfg.ContainerID),
		fixtures.WithFixturesLogger(logger),
	)

	report := &output.Report{BasePath: cfg.FixturesPath}
	for _, name := range names {
		result := output.FixtureResult{
			Fixture: name,
			URL:     loader.ResolveURL(name),
		}
		fixtureStart := time.Now()

		content, err := fx.Read(name)
		if err == nil {
			err = fx.Set(content)
		}
		if err != nil {
			result.Err = err
		} else {
			result.Bytes = len(content)
			result.Elements = len(fx.Container().QueryAll("*"))
		}
		result.Duration = time.Since(fixtureStart)

		logger.Info("fixture checked",
			zap.String("fixture", name),
			zap.Bool("passed", result.Passed()),
			zap.Int("elements", result.Elements))
		report.Results = append(report.Results, result)
	}
	fx.CleanUp()

	report.Duration = time.Since(start)
	return report
}

// discoverFixtures lists fixture files under dir relative to it, with
// forward slashes, sorted.
func discoverFixtures(dir string) ([]string, error) {
	if isRemote(dir) {
		return nil, fmt.Errorf("name the fixtures to check when the fixtures path is a URL (%s)", dir)
	}

	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isFixtureFile(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .html or .htm files found in %s", dir)
	}

	sort.Strings(names)
	return names, nil
}

func isFixtureFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// watchFixtures calls onChange, debounced, whenever a fixture file under dir
// is written or created. It returns when ctx is done.
func watchFixtures(ctx context.Context, dir string, logger *zap.Logger, onChange func(name string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isFixtureFile(event.Name) {
				continue
			}
			logger.Debug("fixture event", zap.String("file", event.Name), zap.String("op", event.Op.String()))

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				onChange(name)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
