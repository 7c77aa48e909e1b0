package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/carcheck"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Lookups   carcheck.LookupService
	Extractor carcheck.DetailsExtractor
	Metrics   prometheus.Gatherer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string        `name:"db" env:"CARCHECK_DB" help:"SQLite database path (default ~/.carcheck/carcheck.db)"`
	CheckURL string        `name:"check-url" env:"CARCHECK_URL" default:"${check_url}" help:"Vehicle check page"`
	Timeout  time.Duration `default:"10s" help:"Remote fetch timeout"`
	Rate     float64       `default:"1" help:"Remote requests per second"`
	Browser  bool          `help:"Fetch with headless Chrome"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`

	Lookup  LookupCmd  `cmd:"" help:"Look up one or more registrations"`
	History HistoryCmd `cmd:"" help:"List saved lookups"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved lookup"`
	Share   ShareCmd   `cmd:"" help:"Print share text for a saved lookup"`
	Extract ExtractCmd `cmd:"" help:"Extract vehicle details from a saved check page"`
	Serve   ServeCmd   `cmd:"" help:"Serve the JSON API"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Registrations []string `arg:"" name:"registration" help:"Registration numbers"`
	Concurrency   int      `short:"c" default:"4" help:"Concurrent lookup limit"`
	Share         bool     `help:"Print results in share format"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Query string `arg:"" optional:"" help:"Only registrations containing this text"`
	Match string `short:"m" help:"Case-insensitive filter on registration or details"`
	Limit int    `short:"n" help:"Show at most this many lookups"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    int64 `arg:"" help:"Saved lookup ID"`
	Force bool  `help:"Confirm deletion"`
}

// ShareCmd is the "share" subcommand.
type ShareCmd struct {
	ID int64 `arg:"" help:"Saved lookup ID"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" optional:"" help:"HTML file (default stdin)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
