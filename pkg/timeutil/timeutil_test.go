package timeutil

import (
	"testing"
	"time"
)

func TestToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2025, 3, 10, 14, 30, 0, 0, loc)
	got := ToUTC(local)
	if got.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", got.Location())
	}
	if !got.Equal(local) {
		t.Error("conversion must not change the instant")
	}
	if got.Hour() != 9 {
		t.Errorf("expected 09:30 UTC, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 17, 45, 12, 999, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStartOfDay_CrossesTimezone(t *testing.T) {
	// 01:00 on March 11 in UTC+5 is still March 10 in UTC.
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 3, 11, 1, 0, 0, 0, loc)
	got := StartOfDay(in)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	got := EndOfDay(in)
	next := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Add(time.Nanosecond).Equal(next) {
		t.Errorf("expected one nanosecond before next midnight, got %v", got)
	}
	if got.Day() != 10 {
		t.Errorf("end of day must stay on the same day, got day %d", got.Day())
	}
}

func TestAddDays(t *testing.T) {
	in := time.Date(2025, 1, 30, 12, 0, 0, 0, time.UTC)
	got := AddDays(in, 3)
	want := time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	got = AddDays(in, -30)
	want = time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
