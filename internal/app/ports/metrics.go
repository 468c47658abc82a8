package ports

import "survivalcraft/internal/domain/survival"

// ActionMetrics counts action outcomes. Settled covers OK and REJECTED
// results; reason is empty for OK.
type ActionMetrics interface {
	RecordSettled(action survival.ActionType, code survival.ResultCode, reason string)
	RecordConflict()
	RecordFailure()
}
