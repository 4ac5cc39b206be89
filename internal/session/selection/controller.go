// Package selection implements the venue selection state machine: a
// selection enters Loading, and after a cancellable delay the venue's
// insight bundle is loaded and the controller becomes Ready. Only the most
// recent selection can ever become Ready.
package selection

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/platform/metrics"
	"github.com/riskibarqy/venue-insight/internal/platform/scheduler"
	"github.com/riskibarqy/venue-insight/internal/session/actor"
	"github.com/riskibarqy/venue-insight/internal/usecase"
)

const (
	DefaultLoadDelay   = 800 * time.Millisecond
	DefaultLoadTimeout = 5 * time.Second
)

// InsightLoader resolves the bundle shown for a ready venue.
type InsightLoader interface {
	LoadVenueInsights(ctx context.Context, venueID string) (usecase.VenueInsights, error)
}

type Config struct {
	LoadDelay        time.Duration
	LoadTimeout      time.Duration
	SubscriberBuffer int
}

type Controller struct {
	loader  InsightLoader
	sched   scheduler.Scheduler
	cfg     Config
	logger  *logging.Logger
	metrics *metrics.Metrics

	loop *actor.Loop
	pub  *actor.Publisher[State]

	// Cancelled when Run exits; parent of every load.
	baseCtx    context.Context
	baseCancel context.CancelFunc

	// Owned by the loop goroutine.
	state      State
	generation uint64
	pending    scheduler.Token
	loadCancel context.CancelFunc
}

func NewController(loader InsightLoader, sched scheduler.Scheduler, cfg Config, logger *logging.Logger, m *metrics.Metrics) *Controller {
	if cfg.LoadDelay <= 0 {
		cfg.LoadDelay = DefaultLoadDelay
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = DefaultLoadTimeout
	}
	if sched == nil {
		sched = scheduler.NewReal()
	}
	if logger == nil {
		logger = logging.Default()
	}

	initial := State{Phase: PhaseIdle}
	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &Controller{
		loader:     loader,
		sched:      sched,
		cfg:        cfg,
		logger:     logger.Named("selection"),
		metrics:    m,
		loop:       actor.NewLoop(),
		pub:        actor.NewPublisher(initial, cfg.SubscriberBuffer),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		state:      initial,
	}
}

// Run is the controller's event loop. It returns when ctx is cancelled;
// pending timers and loads are cancelled and subscriber channels closed.
func (c *Controller) Run(ctx context.Context) error {
	return c.loop.Run(ctx, c.shutdown)
}

// Snapshot returns the most recently published state.
func (c *Controller) Snapshot() State {
	return c.pub.Latest()
}

// SelectVenue moves to Loading for venueID, superseding any pending or
// in-flight load. Unknown venues are accepted.
func (c *Controller) SelectVenue(ctx context.Context, venueID string) (State, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return c.Snapshot(), ErrInvalidVenueID
	}

	var out State
	err := c.loop.Do(ctx, func() error {
		c.metrics.VenueSelected()
		out = c.beginLoad(venueID)
		return nil
	})
	if err != nil {
		return c.Snapshot(), mapLoopError(err)
	}
	return out, nil
}

// Retry reloads the venue of a Failed state.
func (c *Controller) Retry(ctx context.Context) (State, error) {
	var out State
	err := c.loop.Do(ctx, func() error {
		if c.state.Phase != PhaseFailed {
			return errors.Wrapf(ErrNothingToRetry, "phase=%s", c.state.Phase)
		}
		out = c.beginLoad(c.state.VenueID)
		return nil
	})
	if err != nil {
		return c.Snapshot(), mapLoopError(err)
	}
	return out, nil
}

// Subscribe returns a channel primed with the current snapshot and fed every
// later transition. The channel is closed by unsubscribe or when Run exits.
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

	unsubscribe := func() {
		c.loop.Post(func() { c.pub.Remove(id) })
	}
	return ch, unsubscribe, nil
}

func (c *Controller) beginLoad(venueID string) State {
	if c.cancelPending() {
		c.metrics.LoadSuperseded()
		c.logger.Debug("pending venue load superseded", "venue_id", c.state.VenueID, "next_venue_id", venueID)
	}

	c.generation++
	gen := c.generation
	c.pending = c.sched.AfterFunc(c.cfg.LoadDelay, func() {
		c.loop.Post(func() { c.onDelayElapsed(gen) })
	})

	return c.transition(State{Phase: PhaseLoading, VenueID: venueID})
}

// cancelPending stops any scheduled timer and in-flight load, reporting
// whether anything was outstanding.
func (c *Controller) cancelPending() bool {
	outstanding := false
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
		outstanding = true
	}
	if c.loadCancel != nil {
		c.loadCancel()
		c.loadCancel = nil
		outstanding = true
	}
	return outstanding
}

func (c *Controller) onDelayElapsed(gen uint64) {
	if gen != c.generation || c.state.Phase != PhaseLoading {
		c.logger.Debug("stale venue load timer dropped", "generation", gen)
		return
	}
	c.pending = nil

	venueID := c.state.VenueID
	ctx, cancel := context.WithTimeout(c.baseCtx, c.cfg.LoadTimeout)
	c.loadCancel = cancel

	go func() {
		insights, err := c.loader.LoadVenueInsights(ctx, venueID)
		c.loop.Post(func() { c.onLoaded(gen, insights, err) })
	}()
}

func (c *Controller) onLoaded(gen uint64, insights usecase.VenueInsights, err error) {
	if gen != c.generation || c.state.Phase != PhaseLoading {
		c.logger.Debug("stale venue load result dropped", "generation", gen)
		return
	}
	if c.loadCancel != nil {
		c.loadCancel()
		c.loadCancel = nil
	}

	venueID := c.state.VenueID
	if err != nil {
		c.metrics.LoadFailed()
		c.logger.Warn("venue load failed", "venue_id", venueID, "error", err)
		c.transition(State{Phase: PhaseFailed, VenueID: venueID, Reason: err.Error()})
		return
	}

	c.transition(State{Phase: PhaseReady, VenueID: venueID, Insights: &insights})
}

func (c *Controller) transition(next State) State {
	next.Version = c.state.Version + 1
	c.logger.Debug("venue selection transition",
		"from", string(c.state.Phase),
		"to", string(next.Phase),
		"venue_id", next.VenueID,
		"version", next.Version,
	)
	c.state = next
	c.pub.Publish(next)
	return next
}

func (c *Controller) shutdown() {
	c.cancelPending()
	c.baseCancel()
	c.pub.Close()
}
