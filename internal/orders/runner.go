// Package orders drives the computer builder from manifest data, persists
// the products and reports what was rejected and why.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/typestatex"
	"github.com/comalice/typestatex/computer"
	"github.com/comalice/typestatex/internal/production"
)

// Store persists finalized products.
type Store interface {
	Save(ctx context.Context, rec production.Record) error
}

// Publisher receives one event per order.
type Publisher interface {
	Publish(ctx context.Context, event production.BuildEvent) error
}

// Result is the outcome of one order.
type Result struct {
	ID       uuid.UUID
	Spec     computer.Spec
	Computer computer.Computer
	Err      error
}

// OK reports whether the order produced a computer.
func (r Result) OK() bool { return r.Err == nil }

// Runner builds orders one at a time.
type Runner struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *Metrics
	newID     func() uuid.UUID
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore persists every built product to s.
func WithStore(s Store) Option {
	return func(r *Runner) {
		r.store = s
	}
}

// WithPublisher sends a BuildEvent per order to p.
func WithPublisher(p Publisher) Option {
	return func(r *Runner) {
		r.publisher = p
	}
}

// WithLogger configures the Runner's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithMetrics configures the Runner with metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithIDs overrides the record ID generator.
func WithIDs(f func() uuid.UUID) Option {
	return func(r *Runner) {
		r.newID = f
	}
}

// WithClock overrides the record timestamp source.
func WithClock(f func() time.Time) Option {
	return func(r *Runner) {
		r.now = f
	}
}

// NewRunner creates a Runner. Without options it neither stores nor
// publishes, logs to slog.Default and registers metrics nowhere.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.Default(),
		newID:  uuid.New,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(prometheus.NewRegistry())
	}
	return r
}

// Run builds every order in turn. A rejected order does not stop the run;
// its error is in the Result. Run returns an error only for infrastructure
// failures (store, publisher, canceled context).
func (r *Runner) Run(ctx context.Context, specs []computer.Spec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.runOne(ctx, spec)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, spec computer.Spec) (Result, error) {
	res := Result{ID: r.newID(), Spec: spec}
	log := r.logger.With("order", res.ID, "owner", spec.Owner)

	start := time.Now()
	c, err := computer.FromSpec(spec)
	r.metrics.ObserveBuild(start)

	event := production.BuildEvent{RecordID: res.ID, Owner: spec.Owner, Timestamp: r.now().UTC()}
	if err != nil {
		res.Err = err
		reason := rejectReason(err)
		r.metrics.IncrementRejected(reason)
		log.Warn("order rejected", "reason", reason, "error", err)
		event.Outcome, event.Reason = production.Rejected, err.Error()
		return res, r.publish(ctx, event)
	}

	res.Computer = c
	r.metrics.IncrementBuilt()
	log.Info("order built", "computer", c.String())
	if r.store != nil {
		if err := r.store.Save(ctx, production.NewRecord(res.ID, c, event.Timestamp)); err != nil {
			return res, fmt.Errorf("save order %s: %w", res.ID, err)
		}
	}
	event.Outcome = production.Built
	return res, r.publish(ctx, event)
}

func (r *Runner) publish(ctx context.Context, event production.BuildEvent) error {
	if r.publisher == nil {
		return nil
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("publish order %s: %w", event.RecordID, err)
	}
	return nil
}

// rejectReason maps an order error to a low-cardinality metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, computer.ErrMissingSlot):
		return "missing_slot"
	case errors.Is(err, computer.ErrUnknownVendor):
		return "unknown_vendor"
	case errors.Is(err, typestatex.ErrBelowMinimum), errors.Is(err, typestatex.ErrAboveMaximum):
		return "out_of_range"
	default:
		return "invalid"
	}
}
