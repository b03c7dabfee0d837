package networth

import (
	"testing"
	"time"
)

func TestHistoryAppendSorts(t *testing.T) {
	h := new(History[float64])
	h.Append(NewDate(2024, time.January, 10), 3)
	h.Append(NewDate(2024, time.January, 1), 1)
	h.Append(NewDate(2024, time.January, 5), 2)

	if day, v := h.First(); day != NewDate(2024, time.January, 1) || v != 1 {
		t.Errorf("First = %s %v", day, v)
	}
	if day, v := h.Latest(); day != NewDate(2024, time.January, 10) || v != 3 {
		t.Errorf("Latest = %s %v", day, v)
	}

	var prev Date
	for day := range h.Values() {
		if !prev.IsZero() && !prev.Before(day) {
			t.Errorf("history not chronological: %s after %s", day, prev)
		}
		prev = day
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := NewDate(2024, time.January, 10)
	h.Append(on, 3)
	h.Append(on, 4)

	if h.Len() != 1 {
		t.Fatalf("len = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 4 {
		t.Errorf("Get = %v %v, want 4", v, ok)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := new(History[string])
	if day, v := h.Latest(); !day.IsZero() || v != "" {
		t.Errorf("empty Latest = %s %q", day, v)
	}
	if _, ok := h.Get(NewDate(2024, time.January, 1)); ok {
		t.Error("Get on empty history should miss")
	}
}
