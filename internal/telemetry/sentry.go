// Package telemetry forwards per-item conversion failures to Sentry.
package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/backmassage/webpix/internal/convert"
)

// Sentry is a pipeline error sink backed by a Sentry hub. A Sentry built
// with an empty DSN is valid and discards everything.
type Sentry struct {
	hub *sentry.Hub
}

// NewSentry creates a client for dsn. release tags every event.
func NewSentry(dsn, release string) (*Sentry, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:     dsn,
		Release: "webpix@" + release,
	})
	if err != nil {
		return nil, err
	}
	return &Sentry{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Enabled reports whether events are actually sent.
func (s *Sentry) Enabled() bool {
	return s != nil && s.hub.Client() != nil && s.hub.Client().Options().Dsn != ""
}

// Capture reports the failure of one item, tagged with its source file and
// the stage that failed.
func (s *Sentry) Capture(source string, err error) {
	if !s.Enabled() || err == nil {
		return
	}
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("source", source)
		stage := convert.StageOf(err)
		if stage != "" {
			scope.SetTag("stage", string(stage))
		}
		if stage == convert.StageDelete {
			scope.SetLevel(sentry.LevelWarning)
		}
		s.hub.CaptureException(err)
	})
}

// Flush waits up to timeout for queued events to be delivered.
func (s *Sentry) Flush(timeout time.Duration) bool {
	if !s.Enabled() {
		return true
	}
	return s.hub.Flush(timeout)
}
