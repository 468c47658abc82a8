package inmemory

import (
	"maps"
	"sync"

	"survivalcraft/internal/domain/survival"
)

// Snapshot is the KPI body served on /ops/kpi.
type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSettled  uint64            `json:"action_settled"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ByResultCode   map[string]uint64 `json:"by_result_code"`
	ByAction       map[string]uint64 `json:"by_action"`
	ByRejection    map[string]uint64 `json:"by_rejection_reason"`
	RejectionRate  float64           `json:"rejection_rate"`
}

// Recorder counts settled actions per action type, result code and
// rejection reason.
type Recorder struct {
	mu          sync.Mutex
	settled     uint64
	conflict    uint64
	failure     uint64
	byResult    map[string]uint64
	byAction    map[string]uint64
	byRejection map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult:    map[string]uint64{},
		byAction:    map[string]uint64{},
		byRejection: map[string]uint64{},
	}
}

func (r *Recorder) RecordSettled(action survival.ActionType, code survival.ResultCode, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled++
	r.byResult[string(code)]++
	r.byAction[string(action)]++
	if code == survival.ResultRejected && reason != "" {
		r.byRejection[reason]++
	}
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	r.conflict++
	r.mu.Unlock()
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	r.failure++
	r.mu.Unlock()
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSettled:  r.settled,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.settled + r.conflict + r.failure,
		ByResultCode:   maps.Clone(r.byResult),
		ByAction:       maps.Clone(r.byAction),
		ByRejection:    maps.Clone(r.byRejection),
	}
	if out.ActionTotal > 0 {
		out.RejectionRate = float64(r.byResult[string(survival.ResultRejected)]) / float64(out.ActionTotal)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
