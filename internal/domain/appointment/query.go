package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/medlink/medlink/internal/domain/doctor"
	"github.com/medlink/medlink/pkg/timeutil"
)

// Filter selects the time window for a role-scoped listing.
type Filter string

const (
	FilterToday  Filter = "today"
	FilterFuture Filter = "future"
	FilterPast   Filter = "past"
)

func (f Filter) Valid() bool {
	switch f {
	case FilterToday, FilterFuture, FilterPast:
		return true
	}
	return false
}

// condition is one WHERE predicate. Placeholders are written as %d format
// verbs and renumbered when the query is rendered, so conditions compose in
// any order.
type condition struct {
	expr string
	args []any
}

// ListQuery is a fully-built, immutable query specification: predicates,
// sort key, and row-level pagination. It is constructed once by BuildList
// and handed to the store adapter, which renders it into SQL.
type ListQuery struct {
	conds   []condition
	orderBy string
	limit   int
	skip    int
}

// Render produces the WHERE clause (without the leading keyword), its
// positional arguments starting at $1, and the next free placeholder index.
func (q ListQuery) Render() (where string, args []any, next int) {
	next = 1
	parts := make([]string, 0, len(q.conds))
	for _, c := range q.conds {
		idxs := make([]any, len(c.args))
		for i := range c.args {
			idxs[i] = next
			next++
		}
		parts = append(parts, fmt.Sprintf(c.expr, idxs...))
		args = append(args, c.args...)
	}
	return strings.Join(parts, " AND "), args, next
}

func (q ListQuery) OrderBy() string { return q.orderBy }
func (q ListQuery) Limit() int      { return q.limit }
func (q ListQuery) Skip() int       { return q.skip }

// BuildList assembles the query for the role- and filter-scoped listing.
// offset is consumed twice for the future/past filters: once to pick the
// day bucket and once multiplied into the row skip. That coupling is kept
// intact from the original behavior; see DESIGN.md.
func BuildList(d *doctor.Doctor, f Filter, offset, limit int, showAll bool, now time.Time) (ListQuery, error) {
	scope, err := doctorScope(d, showAll)
	if err != nil {
		return ListQuery{}, err
	}
	window, orderBy, err := filterWindow(f, now, offset)
	if err != nil {
		return ListQuery{}, err
	}

	q := ListQuery{
		orderBy: orderBy,
		limit:   limit,
		skip:    offset * limit,
	}
	if scope != nil {
		q.conds = append(q.conds, *scope)
	}
	q.conds = append(q.conds, window...)
	return q, nil
}

// doctorScope derives the visibility predicate from the doctor's role. A
// local doctor sees their own local-side appointments unless showAll lifts
// the restriction; a remote doctor always sees only their remote side. Any
// other role value is rejected.
func doctorScope(d *doctor.Doctor, showAll bool) (*condition, error) {
	switch d.Role {
	case doctor.RoleLocal:
		if showAll {
			return nil, nil
		}
		return &condition{expr: "a.local_doctor_id = $%d", args: []any{d.ID}}, nil
	case doctor.RoleRemote:
		return &condition{expr: "a.remote_doctor_id = $%d", args: []any{d.ID}}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized doctor role %q", ErrInvalidRequest, d.Role)
	}
}

// filterWindow computes the UTC day-aligned window predicates and the sort
// key for a filter. For future and past, dayOffset shifts the bucket away
// from today.
func filterWindow(f Filter, now time.Time, dayOffset int) ([]condition, string, error) {
	today := timeutil.StartOfDay(now)

	switch f {
	case FilterToday:
		return []condition{
			{expr: "a.start_time >= $%d", args: []any{today}},
			{expr: "a.end_time <= $%d", args: []any{timeutil.EndOfDay(now)}},
		}, "a.start_time ASC", nil

	case FilterFuture:
		from := timeutil.AddDays(today, dayOffset)
		to := timeutil.AddDays(today, dayOffset+1)
		return []condition{
			{expr: "a.start_time >= $%d", args: []any{from}},
			{expr: "a.start_time < $%d", args: []any{to}},
		}, "a.start_time ASC", nil

	case FilterPast:
		from := timeutil.EndOfDay(timeutil.AddDays(today, -(dayOffset + 1)))
		return []condition{
			{expr: "a.end_time >= $%d", args: []any{from}},
			{expr: "a.end_time < $%d", args: []any{today}},
		}, "a.end_time ASC", nil

	default:
		return nil, "", fmt.Errorf("%w: unrecognized filter %q", ErrInvalidRequest, f)
	}
}
