package main

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pttdigest"
	"github.com/fwojciec/pttdigest/crawl"
	"github.com/fwojciec/pttdigest/fs"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	User  string `arg:"" optional:"" help:"PTT user ID (prompted if omitted)"`
	Pages string `arg:"" optional:"" help:"Number of listing pages to fetch (prompted if omitted)"`

	Dir       string        `short:"d" default:"." env:"PTTDIGEST_DIR" help:"Directory for staged pages and the report"`
	Timeout   time.Duration `short:"t" default:"10s" env:"PTTDIGEST_TIMEOUT" help:"Fetch timeout per page"`
	Rate      float64       `short:"r" default:"0" env:"PTTDIGEST_RATE" help:"Max requests per second to the listing host (0 = unlimited)"`
	Render    bool          `help:"Render listings in headless Chrome instead of plain HTTP"`
	Keep      bool          `short:"k" help:"Keep staged page files after the report is written"`
	Verbose   bool          `short:"v" help:"Log every fetch, parse and staging operation"`
	Origin    string        `env:"PTTDIGEST_ORIGIN" help:"Listing origin (default https://www.pttweb.cc)"`
	Board     string        `env:"PTTDIGEST_BOARD" help:"Board segment of the listing path (default hatepolitics)"`
	UserAgent string        `name:"user-agent" env:"PTTDIGEST_USER_AGENT" help:"User-Agent header for listing requests"`
}

// Source returns the default source with any overrides from flags applied.
func (c *CLI) Source() pttdigest.Source {
	s := pttdigest.DefaultSource()
	if c.Origin != "" {
		s.Origin = c.Origin
	}
	if c.Board != "" {
		s.Board = c.Board
	}
	if c.UserAgent != "" {
		s.UserAgent = c.UserAgent
	}
	return s
}

// ParsePageCount parses a positive page count.
func ParsePageCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, pttdigest.Errorf(pttdigest.EINVALID, "page count must be a valid integer")
	}
	if n <= 0 {
		return 0, pttdigest.Errorf(pttdigest.EINVALID, "page count must be greater than 0")
	}
	return n, nil
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Crawler *crawl.Crawler
	Stager  *fs.Stager
	Report  *fs.Report
}

// DigestCmd handles the download, aggregate and cleanup run.
type DigestCmd struct {
	User  string
	Pages int
}
