package intake

import (
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/session/actor"
)

var (
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidCandidate  = errors.New("invalid candidate file")
	ErrInvalidTransition = errors.New("invalid intake transition")
	ErrControllerStopped = errors.New("intake controller stopped")
)

const (
	ReasonInvalidFileType  = "invalid_file_type"
	ReasonFileTooLarge     = "file_too_large"
	ReasonInvalidCandidate = "invalid_candidate"
)

// Reason maps a rejection error to its stable reason code, or "" for any
// other error.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFileType):
		return ReasonInvalidFileType
	case errors.Is(err, ErrFileTooLarge):
		return ReasonFileTooLarge
	case errors.Is(err, ErrInvalidCandidate):
		return ReasonInvalidCandidate
	default:
		return ""
	}
}

func mapLoopError(err error) error {
	if errors.Is(err, actor.ErrStopped) {
		return ErrControllerStopped
	}
	return err
}
