package selection

import "github.com/riskibarqy/venue-insight/internal/usecase"

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// State is a snapshot of the controller. Insights is set only in PhaseReady
// and Reason only in PhaseFailed. Version grows by one with every transition.
// Snapshots of the same transition share the Insights bundle, which must be
// treated as read-only.
type State struct {
	Phase    Phase
	VenueID  string
	Insights *usecase.VenueInsights
	Reason   string
	Version  uint64
}

func (s State) IsReady() bool {
	return s.Phase == PhaseReady
}
