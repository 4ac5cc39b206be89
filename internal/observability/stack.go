package observability

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/config"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
)

// Stack holds the tracing, profiling and pprof hooks started for one
// process. Disabled parts are no-ops.
type Stack struct {
	logger *logging.Logger

	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled backend. On failure the parts already
// started are torn down before the error is returned.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{
		logger:          logger.Named("observability"),
		shutdownTracing: func(context.Context) error { return nil },
		stopProfiler:    func() error { return nil },
	}

	shutdownTracing, err := startTracing(cfg, s.logger)
	if err != nil {
		return nil, errors.Wrap(err, "start tracing")
	}
	s.shutdownTracing = shutdownTracing

	stopProfiler, err := startProfiler(cfg, s.logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, errors.Wrap(err, "start pyroscope")
	}
	s.stopProfiler = stopProfiler

	s.pprof = startPprof(cfg, s.logger)
	return s, nil
}

// Shutdown stops pprof, then the profiler, then flushes traces. All parts
// are attempted and their errors combined.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var err error
	if s.pprof != nil {
		if stopErr := s.pprof.Shutdown(ctx); stopErr != nil {
			err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pprof server"))
		} else {
			s.logger.Info("pprof server stopped")
		}
	}
	if stopErr := s.stopProfiler(); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pyroscope"))
	}
	if stopErr := s.shutdownTracing(ctx); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "flush traces"))
	}
	return err
}

// PprofAddr reports the pprof listen address, empty when disabled.
func (s *Stack) PprofAddr() string {
	if s == nil || s.pprof == nil {
		return ""
	}
	return s.pprof.Addr
}
