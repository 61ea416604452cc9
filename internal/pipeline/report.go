package pipeline

import (
	"github.com/backmassage/webpix/internal/config"
	"github.com/backmassage/webpix/internal/convert"
	"github.com/backmassage/webpix/internal/display"
)

// Logger is the logging surface Report needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// ErrorSink receives every item that did not convert cleanly.
type ErrorSink interface {
	Capture(source string, err error)
}

// LogHeader logs the batch settings before dispatch.
func LogHeader(log Logger, req config.Request) {
	log.Info("Found %d files", len(req.Files))
	log.Info("Quality: %g, workers: %d", req.Quality, Workers(req.Workers, len(req.Files)))
	if req.OutputBase != "" {
		log.Info("Output name: %s", req.OutputBase)
	} else {
		log.Info("Output name: random")
	}
	if req.KeepOriginal {
		log.Info("Originals: keep")
	} else {
		log.Info("Originals: remove after conversion")
	}
	if req.Force {
		log.Warn("Existing outputs will be overwritten")
	}
	if req.DryRun {
		log.Warn("DRY RUN - no files will be written or removed")
	}
}

// Report logs one line per outcome followed by a summary, forwards failures
// to sink (which may be nil), and returns the batch stats.
func Report(log Logger, outcomes []convert.Outcome, sink ErrorSink, dryRun bool) RunStats {
	for _, o := range outcomes {
		switch {
		case o.OK() && dryRun:
			log.Info("Would write: %s -> %s", o.Source, o.Output)
		case o.OK():
			log.Success("Processed: %s", o.Output)
			log.Debug("  %s -> %s (%s of original)", display.FormatBytes(o.InputBytes),
				display.FormatBytes(o.OutputBytes), display.FormatRatio(o.OutputBytes, o.InputBytes))
		case o.Partial():
			log.Warn("Processed: %s (%v)", o.Output, o.Err)
		default:
			log.Error("Error processing %s: %v", o.Source, o.Err)
		}
		if o.Err != nil && sink != nil {
			sink.Capture(o.Source, o.Err)
		}
	}

	stats := Stats(outcomes)
	logSummary(log, &stats, dryRun)
	return stats
}

func logSummary(log Logger, stats *RunStats, dryRun bool) {
	log.Info("==============================")
	if dryRun {
		log.Info("Done: %d planned, %d failed", stats.Converted, stats.Failed)
		return
	}
	log.Info("Done: %d converted, %d partial, %d failed", stats.Converted, stats.Partial, stats.Failed)
	if stats.Converted+stats.Partial == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Total space saved: %s (overall output is larger)",
			display.FormatBytesWithSign(saved))
	}
}
