package selection

import (
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/session/actor"
)

var (
	ErrInvalidVenueID    = errors.New("venue id is required")
	ErrControllerStopped = errors.New("selection controller stopped")
	ErrNothingToRetry    = errors.New("no failed venue load to retry")
)

func mapLoopError(err error) error {
	if errors.Is(err, actor.ErrStopped) {
		return ErrControllerStopped
	}
	return err
}
