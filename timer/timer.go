package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/0xalexb/ebbe/format"
)

// Timer measures the time elapsed between Start and Stop.
type Timer struct {
	name  string
	cfg   Config
	start time.Time

	stopped  bool
	duration time.Duration
}

// Start starts a timer labelled name.
func Start(name string, opts ...Option) *Timer {
	if name == "" {
		name = DefaultName
	}

	cfg := newConfig(opts)

	return &Timer{
		name:  name,
		cfg:   cfg,
		start: cfg.Clock.Now(),
	}
}

// Measure runs fn inside a timer and returns the measured duration.
// The report is written even if fn panics.
func Measure(name string, fn func(), opts ...Option) (elapsed time.Duration) {
	t := Start(name, opts...)

	defer func() {
		elapsed = t.Stop()
	}()

	fn()

	return elapsed
}

// Name returns the timer label.
func (t *Timer) Name() string {
	return t.name
}

// Elapsed returns the time since Start, or the final duration once stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.duration
	}

	return t.cfg.Clock.Since(t.start)
}

// Stop freezes the timer and reports its duration. Only the first call reports.
// A Timer is not safe for concurrent use.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.stopped = true
		t.duration = t.cfg.Clock.Since(t.start)
		t.report()
	}

	return t.duration
}

func (t *Timer) report() {
	text, err := format.Seconds(t.duration.Seconds())
	if err != nil {
		text = t.duration.String()
	}

	if t.cfg.Writer != nil {
		_, _ = fmt.Fprintf(t.cfg.Writer, "%s: %s\n", t.name, text)
	}

	if t.cfg.Logger != nil {
		t.cfg.Logger.Info("timer stopped",
			slog.String("name", t.name),
			slog.Duration("duration", t.duration),
			slog.String("elapsed", text),
		)
	}
}
