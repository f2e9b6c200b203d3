package student

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/schedule"
)

var (
	// errors
	ErrNotFound         = errors.New("student not found")
	ErrSaveInFlight     = errors.New("a save cycle is already in flight")
	ErrMalformedPayload = errors.New("malformed remote payload")
)

type (
	// Store is the narrow record-store boundary: an opaque, batch-only
	// read/write set of student records keyed by id. Implementations exist
	// for the spreadsheet endpoint, PostgreSQL and in-memory.
	Store interface {
		FetchAll(ctx context.Context) ([]Student, error)
		// SaveAll persists the full set as one batch; there is no partial
		// commit from the client's perspective.
		SaveAll(ctx context.Context, students []Student) error
	}

	SyncStatus string
	SyncAction string

	// SyncState is transient, process-local bookkeeping for the last
	// load/save operation. It is never persisted.
	SyncState struct {
		LastSyncTime time.Time  `json:"lastSyncTime"`
		Status       SyncStatus `json:"status"`
		LastAction   SyncAction `json:"lastAction,omitempty"`
	}

	// SaveResult reports the outcome of one save cycle.
	SaveResult struct {
		OpID          string     `json:"opId"`
		NothingToSave bool       `json:"nothingToSave"`
		Saved         bool       `json:"saved"`
		Conflicts     []Conflict `json:"conflicts,omitempty"`
	}

	// Statistics is the per-status summary of the roster.
	Statistics struct {
		Total          int            `json:"total"`
		ByStatus       map[Status]int `json:"byStatus"`
		AveragePoints  float64        `json:"averagePoints"`
		ExpectedPoints float64        `json:"expectedPoints"`
	}

	// Service owns the roster state explicitly: the working set, the
	// baseline captured at the last successful load, and the sync state.
	// All access is serialized; multi-user edit safety is handled by the
	// merge protocol at the store boundary, not by this lock.
	Service struct {
		mu      sync.Mutex
		store   Store
		cal     *schedule.Calendar
		logger  core.Logger
		mailSvc core.EmailService
		conf    *core.Config

		roster   []Student
		baseline map[int]Student
		state    SyncState
		saving   bool

		today func() time.Time // mockable
	}
)

const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
	SyncSuccess SyncStatus = "success"
	SyncError   SyncStatus = "error"

	ActionLoad SyncAction = "load"
	ActionSave SyncAction = "save"
)

func NewService(store Store, cal *schedule.Calendar, logger core.Logger, mailSvc core.EmailService, conf *core.Config) *Service {
	offset := conf.Program.TimezoneOffsetHours
	return &Service{
		store:    store,
		cal:      cal,
		logger:   logger,
		mailSvc:  mailSvc,
		conf:     conf,
		baseline: make(map[int]Student),
		state:    SyncState{Status: SyncIdle},
		today:    func() time.Time { return schedule.Today(offset) },
	}
}

// SetClock overrides the reference "today" used for projections; tests only.
func (svc *Service) SetClock(today func() time.Time) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.today = today
}

// Load fetches the remote snapshot, rebuilds the roster with fresh derived
// fields and captures it as the new baseline. A malformed payload clears the
// roster to empty rather than leaving a mix of old and undefined data; a
// transport failure leaves the previous (stale but valid) state in place.
func (svc *Service) Load(ctx context.Context) ([]Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = SyncState{Status: SyncSyncing, LastAction: ActionLoad}
	records, err := svc.store.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			svc.roster = nil
			svc.baseline = make(map[int]Student)
		}
		svc.state = SyncState{Status: SyncError, LastAction: ActionLoad, LastSyncTime: time.Now().UTC()}
		return nil, err
	}

	svc.adopt(records)
	svc.state = SyncState{Status: SyncSuccess, LastAction: ActionLoad, LastSyncTime: time.Now().UTC()}
	return svc.snapshot(), nil
}

// adopt replaces the roster and baseline with fresh copies of `records`,
// recomputing every derived field for today. Callers hold the lock.
func (svc *Service) adopt(records []Student) {
	expected := svc.cal.ExpectedPoints(svc.today())
	maxTotal := svc.cal.TotalMaxPoints()

	svc.roster = make([]Student, 0, len(records))
	svc.baseline = make(map[int]Student, len(records))
	for _, r := range records {
		s := r.Clone()
		s.Recompute(expected, maxTotal)
		svc.roster = append(svc.roster, s)
		svc.baseline[s.ID] = s.Clone()
	}
	svc.assignRankBadges()
}

// assignRankBadges awards Top 3 / Top 5 / Top 10 by total points. Callers
// hold the lock.
func (svc *Service) assignRankBadges() {
	order := make([]*Student, 0, len(svc.roster))
	for i := range svc.roster {
		svc.roster[i].RankBadge = ""
		order = append(order, &svc.roster[i])
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].TotalPoints > order[j].TotalPoints })

	for rank, s := range order {
		if s.TotalPoints == 0 {
			break
		}
		switch {
		case rank < 3:
			s.RankBadge = BadgeTop3
		case rank < 5:
			s.RankBadge = BadgeTop5
		case rank < 10:
			s.RankBadge = BadgeTop10
		}
	}
}

// snapshot deep-copies the roster. Callers hold the lock.
func (svc *Service) snapshot() []Student {
	out := make([]Student, 0, len(svc.roster))
	for _, s := range svc.roster {
		out = append(out, s.Clone())
	}
	return out
}

// Students returns the working set with derived fields refreshed for today.
func (svc *Service) Students() []Student {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.refresh()
	return svc.snapshot()
}

// refresh recomputes derived fields in place for today. Callers hold the lock.
func (svc *Service) refresh() {
	expected := svc.cal.ExpectedPoints(svc.today())
	maxTotal := svc.cal.TotalMaxPoints()
	for i := range svc.roster {
		svc.roster[i].Recompute(expected, maxTotal)
	}
	svc.assignRankBadges()
}

func (svc *Service) Get(id int) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.refresh()
	for _, s := range svc.roster {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return Student{}, ErrNotFound
}

// SetProgress applies an instructor point edit; out-of-range values are
// clamped silently. Derived fields and the modification trail are refreshed.
func (svc *Service) SetProgress(id, course, points int) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.roster {
		if svc.roster[i].ID != id {
			continue
		}
		s := &svc.roster[i]
		s.SetProgress(course, points, svc.cal.MaxPointsPerCourse(), time.Now().UTC())
		s.Recompute(svc.cal.ExpectedPoints(svc.today()), svc.cal.TotalMaxPoints())
		svc.assignRankBadges()
		return s.Clone(), nil
	}
	return Student{}, ErrNotFound
}

// Update applies operator edits to a student's detail fields.
func (svc *Service) Update(id int, uu UpdateStudent) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.roster {
		if svc.roster[i].ID != id {
			continue
		}
		uu.apply(&svc.roster[i])
		return svc.roster[i].Clone(), nil
	}
	return Student{}, ErrNotFound
}

// NextTargetFor computes the cheapest status improvement for a student.
func (svc *Service) NextTargetFor(id int) (NextTarget, error) {
	s, err := svc.Get(id)
	if err != nil {
		return NextTarget{}, err
	}
	target, ok := NextStatusTarget(s.TotalPoints, s.ExpectedPoints, svc.cal.TotalMaxPoints())
	if !ok {
		return NextTarget{}, nil
	}
	return target, nil
}

// Save runs the conflict-aware save protocol against the store:
//
//	fetch remote -> diff local vs baseline -> merge (local wins) ->
//	conflicts pause for the operator unless force -> recompute ->
//	one atomic batch write -> re-fetch -> re-baseline.
//
// Only one save cycle may be in flight at a time.
func (svc *Service) Save(ctx context.Context, force bool) (SaveResult, error) {
	svc.mu.Lock()
	if svc.saving {
		svc.mu.Unlock()
		return SaveResult{}, ErrSaveInFlight
	}
	svc.saving = true
	defer func() {
		svc.mu.Lock()
		svc.saving = false
		svc.mu.Unlock()
	}()

	res := SaveResult{OpID: uuid.New().String()}
	svc.state = SyncState{Status: SyncSyncing, LastAction: ActionSave}
	prevStatuses := make(map[int]Status, len(svc.roster))
	for _, s := range svc.roster {
		prevStatuses[s.ID] = s.Status
	}
	local := svc.snapshot()
	baseline := svc.baseline
	svc.mu.Unlock()

	// step 1: fetch the current remote snapshot; failure aborts, no writes
	remote, err := svc.store.FetchAll(ctx)
	if err != nil {
		svc.setState(SyncError, ActionSave)
		svc.logger.Error(fmt.Sprintf("save %s: fetching remote snapshot: %v", res.OpID, err), err)
		return res, err
	}

	merge := Merge(baseline, local, remote)

	// nothing changed locally: adopt the remote state and stop, no write
	if merge.NothingToSave() {
		svc.mu.Lock()
		svc.adopt(remote)
		svc.state = SyncState{Status: SyncSuccess, LastAction: ActionSave, LastSyncTime: time.Now().UTC()}
		svc.mu.Unlock()
		res.NothingToSave = true
		return res, nil
	}

	// conflicts pause the cycle for an operator decision unless forced
	if merge.HasConflicts() && !force {
		res.Conflicts = merge.Conflicts
		svc.setState(SyncIdle, ActionSave)
		svc.logger.Warn(fmt.Sprintf("save %s: %d conflict(s) detected, awaiting operator decision", res.OpID, len(merge.Conflicts)))
		return res, nil
	}
	res.Conflicts = merge.Conflicts

	// merge may combine stale derived fields with fresh base fields
	expected := svc.cal.ExpectedPoints(svc.todayLocked())
	maxTotal := svc.cal.TotalMaxPoints()
	for i := range merge.Merged {
		merge.Merged[i].Recompute(expected, maxTotal)
	}

	// one atomic batch write; on failure local state is kept, operator retries
	if err := svc.store.SaveAll(ctx, merge.Merged); err != nil {
		svc.setState(SyncError, ActionSave)
		svc.logger.Error(fmt.Sprintf("save %s: persisting batch: %v", res.OpID, err), err)
		return res, err
	}

	// re-fetch to confirm and re-baseline
	confirmed, err := svc.store.FetchAll(ctx)
	if err != nil {
		// the write went through; fall back to the merged set as baseline
		svc.logger.Warn(fmt.Sprintf("save %s: confirming write: %v", res.OpID, err))
		confirmed = merge.Merged
	}

	svc.mu.Lock()
	svc.adopt(confirmed)
	svc.state = SyncState{Status: SyncSuccess, LastAction: ActionSave, LastSyncTime: time.Now().UTC()}
	roster := svc.snapshot()
	svc.mu.Unlock()

	res.Saved = true
	svc.logger.Info(fmt.Sprintf("save %s: persisted %d record(s), %d locally changed", res.OpID, len(merge.Merged), len(merge.ChangedIDs)))
	svc.notifyAtRisk(prevStatuses, roster)
	return res, nil
}

func (svc *Service) todayLocked() time.Time {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.today()
}

func (svc *Service) setState(status SyncStatus, action SyncAction) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.state = SyncState{Status: status, LastAction: action, LastSyncTime: time.Now().UTC()}
}

// notifyAtRisk emails the staff for every student who dropped into En Riesgo
// during this cycle.
func (svc *Service) notifyAtRisk(prev map[int]Status, roster []Student) {
	if svc.mailSvc == nil || len(svc.conf.AlertRecipients) == 0 {
		return
	}
	var msgs []*core.EmailMessage
	for _, s := range roster {
		if s.Status != StatusRiesgo || prev[s.ID] == StatusRiesgo {
			continue
		}
		msgs = append(msgs, &core.EmailMessage{
			To:           svc.conf.AlertRecipients,
			Subject:      fmt.Sprintf("Alerta de riesgo: %s", s.Name),
			TemplateName: "riesgo_alert",
			TemplateData: map[string]interface{}{
				"Name":           s.Name,
				"Status":         string(s.Status),
				"TotalPoints":    s.TotalPoints,
				"ExpectedPoints": int(s.ExpectedPoints),
			},
		})
	}
	if len(msgs) > 0 {
		svc.mailSvc.SendMessages(msgs...)
	}
}

// SyncState returns the transient state of the last sync operation.
func (svc *Service) SyncState() SyncState {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.state
}

// Stats summarizes the roster per status band.
func (svc *Service) Stats() Statistics {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.refresh()

	stats := Statistics{
		Total:          len(svc.roster),
		ByStatus:       make(map[Status]int, len(OrderedStatuses)),
		ExpectedPoints: svc.cal.ExpectedPoints(svc.today()),
	}
	var sum int
	for _, s := range svc.roster {
		stats.ByStatus[s.Status]++
		sum += s.TotalPoints
	}
	if stats.Total > 0 {
		stats.AveragePoints = float64(sum) / float64(stats.Total)
	}
	return stats
}
