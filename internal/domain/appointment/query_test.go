package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medlink/medlink/internal/domain/doctor"
)

var qNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func localDoc() *doctor.Doctor {
	return &doctor.Doctor{ID: uuid.New(), Role: doctor.RoleLocal}
}

func remoteDoc() *doctor.Doctor {
	return &doctor.Doctor{ID: uuid.New(), Role: doctor.RoleRemote}
}

func TestBuildList_LocalToday(t *testing.T) {
	d := localDoc()
	q, err := BuildList(d, FilterToday, 0, 10, false, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	where, args, next := q.Render()
	want := "a.local_doctor_id = $1 AND a.start_time >= $2 AND a.end_time <= $3"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if next != 4 {
		t.Errorf("next placeholder = %d, want 4", next)
	}
	if args[0] != d.ID {
		t.Errorf("first arg = %v, want doctor id %v", args[0], d.ID)
	}
	if got := args[1].(time.Time); !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window start = %v, want start of today", got)
	}
	endOfDay := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if got := args[2].(time.Time); !got.Equal(endOfDay) {
		t.Errorf("window end = %v, want %v", got, endOfDay)
	}
	if q.OrderBy() != "a.start_time ASC" {
		t.Errorf("order = %q", q.OrderBy())
	}
}

func TestBuildList_LocalShowAllDropsScope(t *testing.T) {
	q, err := BuildList(localDoc(), FilterToday, 0, 10, true, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	where, _, _ := q.Render()
	want := "a.start_time >= $1 AND a.end_time <= $2"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
}

func TestBuildList_RemoteIgnoresShowAll(t *testing.T) {
	d := remoteDoc()
	q, err := BuildList(d, FilterToday, 0, 10, true, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	where, args, _ := q.Render()
	want := "a.remote_doctor_id = $1 AND a.start_time >= $2 AND a.end_time <= $3"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if args[0] != d.ID {
		t.Errorf("first arg = %v, want doctor id", args[0])
	}
}

func TestBuildList_FutureDayBucket(t *testing.T) {
	q, err := BuildList(remoteDoc(), FilterFuture, 2, 10, false, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, args, _ := q.Render()
	from := args[1].(time.Time)
	to := args[2].(time.Time)
	if !from.Equal(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bucket start = %v, want start-of-today + 2d", from)
	}
	if !to.Equal(time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bucket end = %v, want start-of-today + 3d", to)
	}
	// offset counts twice: day bucket above plus offset*limit row skip.
	if q.Skip() != 20 {
		t.Errorf("skip = %d, want 20", q.Skip())
	}
	if q.Limit() != 10 {
		t.Errorf("limit = %d, want 10", q.Limit())
	}
}

func TestBuildList_PastWindow(t *testing.T) {
	q, err := BuildList(localDoc(), FilterPast, 0, 10, false, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, args, _ := q.Render()
	// offset 0 bounds the window at end-of-yesterday, one nanosecond short
	// of start-of-today.
	from := args[1].(time.Time)
	to := args[2].(time.Time)
	wantFrom := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if !from.Equal(wantFrom) {
		t.Errorf("window start = %v, want %v", from, wantFrom)
	}
	if !to.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window end = %v, want start of today", to)
	}
	if q.OrderBy() != "a.end_time ASC" {
		t.Errorf("order = %q, want end_time ascending", q.OrderBy())
	}
}

func TestBuildList_PastWindowShifted(t *testing.T) {
	q, err := BuildList(localDoc(), FilterPast, 3, 5, false, qNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, args, _ := q.Render()
	wantFrom := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if got := args[1].(time.Time); !got.Equal(wantFrom) {
		t.Errorf("window start = %v, want %v", got, wantFrom)
	}
	if q.Skip() != 15 {
		t.Errorf("skip = %d, want 15", q.Skip())
	}
}

func TestBuildList_UnknownRole(t *testing.T) {
	d := &doctor.Doctor{ID: uuid.New(), Role: doctor.Role("admin")}
	_, err := BuildList(d, FilterToday, 0, 10, false, qNow)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestBuildList_UnknownFilter(t *testing.T) {
	_, err := BuildList(localDoc(), Filter("yesterday"), 0, 10, false, qNow)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestFilterValid(t *testing.T) {
	for _, f := range []Filter{FilterToday, FilterFuture, FilterPast} {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Filter("tomorrow").Valid() {
		t.Error("unexpected valid filter")
	}
	if Filter("").Valid() {
		t.Error("empty filter should be invalid")
	}
}
