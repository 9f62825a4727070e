package invite

import (
	"context"
	"testing"
	"time"
)

func TestTimeUntilDecomposition(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// 90000 seconds is one day, one hour exactly.
	left, ok := TimeUntil(now.Add(90000*time.Second), now)
	if !ok {
		t.Fatal("expected a future target to yield a payload")
	}
	if left.Days != 1 || left.Hours != 1 || left.Minutes != 0 || left.Seconds != 0 {
		t.Fatalf("unexpected decomposition: %+v", left)
	}
}

func TestTimeUntilTotalMatchesDifference(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, secs := range []int64{1, 59, 60, 3599, 3600, 86399, 86400, 90000, 1234567} {
		left, ok := TimeUntil(now.Add(time.Duration(secs)*time.Second), now)
		if !ok {
			t.Fatalf("target %ds ahead reported as passed", secs)
		}
		total := int64(left.Days)*86400 + int64(left.Hours)*3600 + int64(left.Minutes)*60 + int64(left.Seconds)
		if total != secs {
			t.Errorf("secs=%d: recomposed %d from %+v", secs, total, left)
		}
		if left.Hours > 23 || left.Minutes > 59 || left.Seconds > 59 {
			t.Errorf("secs=%d: fields out of range: %+v", secs, left)
		}
	}
}

func TestTimeUntilPassedTarget(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	if _, ok := TimeUntil(now, now); ok {
		t.Error("target equal to now should be terminal")
	}
	if _, ok := TimeUntil(now.Add(-time.Hour), now); ok {
		t.Error("past target should be terminal")
	}
}

func TestTickStopsWhenTargetPassed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Tick(ctx, time.Now().Add(-time.Minute))

	select {
	case _, open := <-ch:
		if open {
			t.Fatal("expected channel to close without payloads for a past target")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tick channel did not close")
	}
}

func TestTickStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ch := Tick(ctx, time.Now().Add(24*time.Hour))

	// First payload is produced immediately.
	select {
	case left, open := <-ch:
		if !open {
			t.Fatal("channel closed before cancellation")
		}
		if left.Days < 0 || left.Days > 1 {
			t.Fatalf("implausible payload: %+v", left)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial payload")
	}

	cancel()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, open := <-ch:
			if !open {
				return // torn down
			}
		case <-deadline:
			t.Fatal("tick channel did not close after cancel")
		}
	}
}
