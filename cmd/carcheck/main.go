package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/carcheck"
	"github.com/fwojciec/carcheck/goquery"
	carhttp "github.com/fwojciec/carcheck/http"
	"github.com/fwojciec/carcheck/lookup"
	carprom "github.com/fwojciec/carcheck/prometheus"
	"github.com/fwojciec/carcheck/rod"
	carslog "github.com/fwojciec/carcheck/slog"
	"github.com/fwojciec/carcheck/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path, used when --db and CARCHECK_DB are unset.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher overrides the remote fetcher selected by flags.
	// Used for end-to-end testing.
	Fetcher carcheck.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("carcheck"),
		kong.Description("Look up vehicle registrations and manage saved lookups."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"check_url": lookup.DefaultCheckURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'carcheck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Selected().Name

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.Extractor = goquery.NewDetailsExtractor()

	// extract works on local input only.
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	} else if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CARCHECK_DB to use a different database path\n")
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CARCHECK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DB.Path(), err)
	}
	defer m.Close()

	svc := &lookup.Service{
		Records:   carslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger),
		Extractor: deps.Extractor,
		CheckURL:  cli.CheckURL,
		Logger:    logger,
	}

	if cmd == "lookup" || cmd == "serve" {
		fetcher, err := m.newFetcher(cli, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		svc.Fetcher = carslog.NewLoggingFetcher(fetcher, logger)
	}

	var lookups carcheck.LookupService = svc
	if cmd == "serve" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		lookups = carprom.NewInstrumentedLookupService(lookups, carprom.NewMetrics(reg))
		deps.Metrics = reg
	}
	deps.Lookups = carslog.NewLoggingLookupService(lookups, logger)

	return kongCtx.Run(deps)
}

func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (carcheck.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Browser {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
	return carhttp.NewFetcher(
		carhttp.WithTimeout(cli.Timeout),
		carhttp.WithRateLimit(cli.Rate),
	), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// defaultDBPath returns ~/.carcheck/carcheck.db. Run creates the directory.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "carcheck.db"
	}
	return filepath.Join(home, ".carcheck", "carcheck.db")
}
