// Package intake implements the simulated file intake workflow: a candidate
// file is validated and selected, a simulated upload completes after a
// delay, and the uploaded state resets to empty after another delay.
package intake

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/platform/id"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/platform/metrics"
	"github.com/riskibarqy/venue-insight/internal/platform/scheduler"
	"github.com/riskibarqy/venue-insight/internal/session/actor"
)

const (
	DefaultUploadDelay = 1500 * time.Millisecond
	DefaultResetDelay  = 3000 * time.Millisecond
)

type Config struct {
	UploadDelay      time.Duration
	ResetDelay       time.Duration
	MaxBytes         int64
	SubscriberBuffer int
	// Now stamps upload receipts. Defaults to time.Now.
	Now func() time.Time
	// IDs names upload receipts. Defaults to random UUIDs.
	IDs id.Generator
}

type Controller struct {
	sched     scheduler.Scheduler
	cfg       Config
	validator *Validator
	logger    *logging.Logger
	metrics   *metrics.Metrics

	loop *actor.Loop
	pub  *actor.Publisher[State]

	// Owned by the loop goroutine.
	state      State
	generation uint64
	pending    scheduler.Token
}

func NewController(sched scheduler.Scheduler, cfg Config, logger *logging.Logger, m *metrics.Metrics) *Controller {
	if cfg.UploadDelay <= 0 {
		cfg.UploadDelay = DefaultUploadDelay
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.IDs == nil {
		cfg.IDs = id.NewUUIDGenerator()
	}
	if sched == nil {
		sched = scheduler.NewReal()
	}
	if logger == nil {
		logger = logging.Default()
	}

	initial := State{Phase: PhaseEmpty}
	return &Controller{
		sched:     sched,
		cfg:       cfg,
		validator: NewValidator(cfg.MaxBytes),
		logger:    logger.Named("intake"),
		metrics:   m,
		loop:      actor.NewLoop(),
		pub:       actor.NewPublisher(initial, cfg.SubscriberBuffer),
		state:     initial,
	}
}

// Run is the controller's event loop. It returns when ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	return c.loop.Run(ctx, c.shutdown)
}

func (c *Controller) Snapshot() State {
	return c.pub.Latest()
}

func (c *Controller) MaxBytes() int64 {
	return c.validator.MaxBytes()
}

// SubmitCandidateFile validates candidate. A rejection keeps the current
// phase and file, raises a notice and returns the rejection error. An
// accepted candidate cancels any pending timer and becomes Selected.
func (c *Controller) SubmitCandidateFile(ctx context.Context, candidate Candidate) (State, error) {
	file, checkErr := c.validator.Check(candidate)

	var out State
	err := c.loop.Do(ctx, func() error {
		if checkErr != nil {
			reason := Reason(checkErr)
			c.metrics.IntakeRejected(reason)
			c.logger.Info("candidate file rejected", "file_name", candidate.Name, "reason", reason, "error", checkErr)

			notice := rejectionNotice(checkErr, c.validator.MaxBytes())
			next := c.state
			next.Notice = &notice
			out = c.transition(next)
			return checkErr
		}

		c.cancelPending()
		out = c.transition(State{Phase: PhaseSelected, File: &file})
		return nil
	})
	if err != nil && !errors.Is(err, checkErr) {
		return c.Snapshot(), mapLoopError(err)
	}
	return out, err
}

// BeginUpload starts the simulated upload of the selected file.
func (c *Controller) BeginUpload(ctx context.Context) (State, error) {
	var out State
	err := c.loop.Do(ctx, func() error {
		if c.state.Phase != PhaseSelected {
			return errors.Wrapf(ErrInvalidTransition, "begin upload from %s", c.state.Phase)
		}

		gen := c.schedule(c.cfg.UploadDelay, c.onUploadDone)
		c.logger.Debug("upload started", "file_name", c.state.File.Name, "generation", gen)
		out = c.transition(State{Phase: PhaseUploading, File: c.state.File})
		return nil
	})
	if err != nil {
		return c.Snapshot(), mapLoopError(err)
	}
	return out, nil
}

// Cancel returns to Empty from any other phase, cancelling a running upload
// or pending reset. It is a no-op from Empty.
func (c *Controller) Cancel(ctx context.Context) (State, error) {
	var out State
	err := c.loop.Do(ctx, func() error {
		if c.state.Phase == PhaseEmpty {
			out = c.state
			return nil
		}
		c.cancelPending()
		out = c.transition(State{Phase: PhaseEmpty})
		return nil
	})
	if err != nil {
		return c.Snapshot(), mapLoopError(err)
	}
	return out, nil
}

func (c *Controller) Subscribe(ctx context.Context) (<-chan State, func(), error) {
	var (
		id uint64
		ch <-chan State
	)
	err := c.loop.Do(ctx, func() error {
		id, ch = c.pub.Add()
		return nil
	})
	if err != nil {
		return nil, func() {}, mapLoopError(err)
	}
	return ch, func() { c.loop.Post(func() { c.pub.Remove(id) }) }, nil
}

// schedule replaces the pending timer. fn runs on the loop only if no newer
// timer was scheduled in the meantime.
func (c *Controller) schedule(d time.Duration, fn func()) uint64 {
	c.cancelPending()
	c.generation++
	gen := c.generation
	c.pending = c.sched.AfterFunc(d, func() {
		c.loop.Post(func() {
			if gen != c.generation {
				c.logger.Debug("stale intake timer dropped", "generation", gen)
				return
			}
			c.pending = nil
			fn()
		})
	})
	return gen
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	// Invalidate fires already queued behind this command.
	c.generation++
}

func (c *Controller) onUploadDone() {
	if c.state.Phase != PhaseUploading {
		return
	}

	file := c.state.File
	receipt := UploadReceipt{
		ID:          c.cfg.IDs.NewID(),
		FileName:    file.Name,
		SizeBytes:   file.SizeBytes,
		CompletedAt: c.cfg.Now(),
	}
	notice := successNotice(file.Name)

	c.metrics.UploadCompleted()
	c.logger.Info("upload completed", "file_name", file.Name, "size_bytes", file.SizeBytes, "receipt_id", receipt.ID)

	c.schedule(c.cfg.ResetDelay, c.onReset)
	c.transition(State{Phase: PhaseUploaded, File: file, Receipt: &receipt, Notice: &notice})
}

func (c *Controller) onReset() {
	if c.state.Phase != PhaseUploaded {
		return
	}
	c.transition(State{Phase: PhaseEmpty})
}

func (c *Controller) transition(next State) State {
	next.Version = c.state.Version + 1
	c.logger.Debug("intake transition",
		"from", string(c.state.Phase),
		"to", string(next.Phase),
		"version", next.Version,
	)
	c.state = next
	c.pub.Publish(next)
	return next
}

func (c *Controller) shutdown() {
	c.cancelPending()
	c.pub.Close()
}
