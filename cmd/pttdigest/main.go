package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pttdigest"
	"github.com/fwojciec/pttdigest/crawl"
	"github.com/fwojciec/pttdigest/fs"
	"github.com/fwojciec/pttdigest/goquery"
	ptthttp "github.com/fwojciec/pttdigest/http"
	"github.com/fwojciec/pttdigest/rod"
	pttslog "github.com/fwojciec/pttdigest/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own errors on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Missing positional
// arguments are prompted for on stdin.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pttdigest"),
		kong.Description("Collect a PTT user's board messages into one text report"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		err = fmt.Errorf("failed to create parser: %w", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	// Resolve input before touching the network or the filesystem.
	in := bufio.NewReader(stdin)
	user := strings.TrimSpace(cli.User)
	if user == "" {
		user = prompt(in, stdout, "Enter user ID: ")
	}
	if user == "" {
		err := pttdigest.Errorf(pttdigest.EINVALID, "user ID required")
		fmt.Fprintf(stderr, "error: %s\n", pttdigest.ErrorMessage(err))
		return err
	}
	// The user ID names the staging and report files.
	if strings.ContainsAny(user, `/\`) {
		err := pttdigest.Errorf(pttdigest.EINVALID, "user ID must not contain a path separator")
		fmt.Fprintf(stderr, "error: %s\n", pttdigest.ErrorMessage(err))
		return err
	}

	rawPages := cli.Pages
	if strings.TrimSpace(rawPages) == "" {
		rawPages = prompt(in, stdout, "Enter number of pages: ")
	}
	pages, err := ParsePageCount(rawPages)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pttdigest.ErrorMessage(err))
		return err
	}

	source := cli.Source()
	if err := source.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pttdigest.ErrorMessage(err))
		return err
	}

	// Wire dependencies
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher pttdigest.Fetcher
	if cli.Render {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(source.UserAgent),
		)
		if err != nil {
			err = fmt.Errorf("failed to start browser: %w", err)
			fmt.Fprintf(stderr, "error: %v\n", err)
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return err
		}
		fetcher = rodFetcher
	} else {
		fetcher = ptthttp.NewFetcher(
			ptthttp.WithTimeout(cli.Timeout),
			ptthttp.WithUserAgent(source.UserAgent),
		)
	}
	defer fetcher.Close()

	stager := fs.NewStager(cli.Dir, user)
	crawler := &crawl.Crawler{
		Source:     source,
		Fetcher:    pttslog.NewLoggingFetcher(fetcher, logger),
		Extractor:  pttslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithSource(source)), logger),
		Stager:     pttslog.NewLoggingStager(stager, logger),
		KeepStaged: cli.Keep,
	}
	if cli.Rate > 0 {
		crawler.RateLimiter = crawl.NewDomainLimiter(cli.Rate)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Crawler: crawler,
		Stager:  stager,
		Report:  fs.NewReport(cli.Dir, user),
	}

	cmd := &DigestCmd{
		User:  user,
		Pages: pages,
	}

	return cmd.Run(deps)
}

// prompt writes label to w and returns the next trimmed line from r.
// EOF yields whatever was read, possibly nothing.
func prompt(r *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprint(w, label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
