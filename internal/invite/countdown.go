package invite

import (
	"context"
	"time"
)

// TimeLeft is the countdown payload shown on an invitation page.
type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeUntil decomposes the remaining time between now and target into whole
// days, hours of day, minutes of hour and seconds of minute. The second
// return value is false once the target has passed; callers should treat
// that as the terminal "celebration has begun" state.
func TimeUntil(target, now time.Time) (TimeLeft, bool) {
	diff := target.Sub(now)
	if diff <= 0 {
		return TimeLeft{}, false
	}

	total := int64(diff / time.Second)
	return TimeLeft{
		Days:    int(total / 86400),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}, true
}

// Tick emits the remaining time once per second until the target passes or
// ctx is canceled, then closes the channel. The channel is buffered so a
// slow reader never blocks the ticker.
func Tick(ctx context.Context, target time.Time) <-chan TimeLeft {
	out := make(chan TimeLeft, 1)

	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			left, ok := TimeUntil(target, time.Now())
			if !ok {
				return
			}

			select {
			case out <- left:
			default:
				// reader still has an unread payload, skip this tick
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}
