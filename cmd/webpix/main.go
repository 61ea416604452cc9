// Command webpix converts images to WebP for the web.
//
// It parses flags, validates the configuration and input list, and either
// runs codec diagnostics (--check) or converts every input in parallel.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backmassage/webpix/internal/check"
	"github.com/backmassage/webpix/internal/config"
	"github.com/backmassage/webpix/internal/display"
	"github.com/backmassage/webpix/internal/logging"
	"github.com/backmassage/webpix/internal/pipeline"
	"github.com/backmassage/webpix/internal/telemetry"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 1 only when nothing could be
// dispatched (bad configuration or unusable encoder). Per-item failures
// are reported but do not change the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args); err != nil {
		fmt.Fprintf(stderr, "webpix: %v\n", err)
		return 1
	}
	if cfg.ShowHelp {
		config.PrintUsage(stdout, version)
		return 0
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "webpix version %s (%s)\n", version, commit)
		return 0
	}

	var skipped []pipeline.Skipped
	if !cfg.CheckOnly && len(cfg.Files) > 0 {
		files, sk, err := pipeline.Resolve(cfg.Files)
		if err != nil {
			for _, s := range sk {
				fmt.Fprintf(stderr, "webpix: skipping %s: %s\n", s.Arg, s.Reason)
			}
			fmt.Fprintf(stderr, "webpix: %v\n", err)
			return 1
		}
		cfg.Files, skipped = files, sk
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "webpix: %v\n", err)
		if config.IsConfigError(err) && len(cfg.Files) == 0 && !cfg.CheckOnly {
			fmt.Fprintln(stderr, "usage: webpix [OPTIONS] <file>... (see --help)")
		}
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(stderr, "webpix: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	sink, err := telemetry.NewSentry(cfg.SentryDSN, version)
	if err != nil {
		log.Error("Invalid Sentry DSN: %v", err)
		return 1
	}
	defer sink.Flush(2 * time.Second)
	if sink.Enabled() {
		log.Debug("Reporting failures to Sentry")
	}

	for _, s := range skipped {
		log.Warn("Skipping %s: %s", s.Arg, s.Reason)
	}
	req := cfg.Request()
	log.Info("=== webpix v%s (%s) ===", version, commit)
	pipeline.LogHeader(log, req)

	// Phase 3: Signal handling. Cancelling stops new items from starting;
	// items already converting run to completion.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing files in progress…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Convert, then report.
	start := time.Now()
	outcomes := pipeline.Run(ctx, req)
	pipeline.Report(log, outcomes, sink, req.DryRun)
	log.Info("Finished in %s", time.Since(start).Round(time.Millisecond))
	return 0
}
