// Package scan performs exhaustive, correctly paginated list-wide scans
// against the ClickUp API, feeding the status counter and the CSV exporter.
//
// Pages are fetched strictly sequentially by page index. Aggregation needs
// the full, order-stable sequence and the upstream API documents no
// concurrent-pagination consistency guarantee, so pages are never fetched
// concurrently. A failed page fetch aborts the whole scan; there is no
// retry and no partial-result fallback.
package scan

// file: internal/scan/scan.go

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	lfsm "github.com/looplab/fsm"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/logging"
)

// PageSize is the fixed page size used for full scans, the maximum the task
// endpoints serve.
const PageSize = 100

// Scan lifecycle states and events.
const (
	stateFetching    = "fetching"
	stateFiltering   = "filtering"
	stateAggregating = "aggregating"

	eventPage      = "page_fetched"
	eventExhausted = "exhausted"
	eventFiltered  = "filtered"
)

// Pager fetches one page of tasks from a list. *clickup.Client satisfies it.
type Pager interface {
	GetTasksPage(ctx context.Context, listID string, page, pageSize int, q clickup.TaskQuery) ([]clickup.Task, error)
}

// Options controls a full scan. Statuses, when non-empty, is a
// case-insensitive status-name filter applied after accumulation.
type Options struct {
	Statuses      []string
	IncludeClosed bool
	Subtasks      bool
}

// Scanner drives repeated page fetches until a list is exhausted.
type Scanner struct {
	pager    Pager
	pageSize int
	logger   logging.Logger
}

// NewScanner creates a Scanner over the given pager.
func NewScanner(pager Pager, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Scanner{pager: pager, pageSize: PageSize, logger: logger}
}

// newLifecycle builds the scan state machine:
// fetching -> (more pages) -> fetching | filtering -> aggregating.
func newLifecycle() *lfsm.FSM {
	return lfsm.NewFSM(stateFetching, lfsm.Events{
		{Name: eventPage, Src: []string{stateFetching}, Dst: stateFetching},
		{Name: eventExhausted, Src: []string{stateFetching}, Dst: stateFiltering},
		{Name: eventFiltered, Src: []string{stateFiltering}, Dst: stateAggregating},
	}, lfsm.Callbacks{})
}

// step advances the lifecycle machine. A transition that stays in the same
// state is reported by looplab as NoTransitionError and is not a failure.
func (s *Scanner) step(ctx context.Context, m *lfsm.FSM, event string) error {
	err := m.Event(ctx, event)
	if err != nil {
		var noTransition lfsm.NoTransitionError
		if errors.As(err, &noTransition) {
			return nil
		}
		return errors.Wrapf(err, "scan lifecycle rejected event %q in state %q", event, m.Current())
	}
	return nil
}

// ScanList accumulates every task in a list, then applies the optional
// status filter. Termination: a page returning fewer items than the page
// size is the last page; a list whose size is an exact multiple of the page
// size costs one extra trailing call that returns zero items, which also
// terminates. Any page-fetch failure aborts the scan and propagates.
func (s *Scanner) ScanList(ctx context.Context, listID string, opts Options) ([]clickup.Task, error) {
	query := clickup.TaskQuery{
		IncludeClosed: opts.IncludeClosed,
		Subtasks:      opts.Subtasks,
	}

	lifecycle := newLifecycle()
	var all []clickup.Task

	for page := 0; ; page++ {
		tasks, err := s.pager.GetTasksPage(ctx, listID, page, s.pageSize, query)
		if err != nil {
			return nil, errors.Wrapf(err, "full scan of list %s aborted at page %d", listID, page)
		}
		all = append(all, tasks...)
		s.logger.Debug("Scan page accumulated.", "listID", listID, "page", page, "pageItems", len(tasks), "totalItems", len(all))

		if len(tasks) < s.pageSize {
			break
		}
		if err := s.step(ctx, lifecycle, eventPage); err != nil {
			return nil, err
		}
	}
	if err := s.step(ctx, lifecycle, eventExhausted); err != nil {
		return nil, err
	}

	filtered := FilterByStatus(all, opts.Statuses)
	if err := s.step(ctx, lifecycle, eventFiltered); err != nil {
		return nil, err
	}
	s.logger.Debug("Scan complete.", "listID", listID, "accumulated", len(all), "afterFilter", len(filtered), "state", lifecycle.Current())
	return filtered, nil
}

// FilterByStatus keeps the tasks whose status name matches one of the given
// names, compared case-insensitively. An empty filter keeps everything.
func FilterByStatus(tasks []clickup.Task, statuses []string) []clickup.Task {
	if len(statuses) == 0 {
		return tasks
	}
	wanted := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	filtered := make([]clickup.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := wanted[strings.ToLower(t.Status.Status)]; ok {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// StatusCount aggregates tasks by status name. The by-status counts always
// sum to Total.
type StatusCount struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// CountByStatus tallies tasks per status name, keyed lowercase for
// deterministic aggregates.
func CountByStatus(tasks []clickup.Task) StatusCount {
	agg := StatusCount{Total: len(tasks), ByStatus: make(map[string]int)}
	for _, t := range tasks {
		agg.ByStatus[strings.ToLower(t.Status.Status)]++
	}
	return agg
}
