package invite

import (
	"net/url"
	"time"
)

const (
	calendarBase    = "https://calendar.google.com/calendar/render"
	calendarLayout  = "20060102T150405Z"
	defaultDuration = 3 * time.Hour
)

// CalendarLink builds a Google Calendar prefill URL for a ceremony. Events
// get a default three hour window starting at the ceremony time. The link
// is opened by the guest's browser; this server never calls it.
func CalendarLink(title string, start time.Time, venue, notes string) string {
	end := start.Add(defaultDuration)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", start.UTC().Format(calendarLayout)+"/"+end.UTC().Format(calendarLayout))
	params.Set("location", venue)
	params.Set("details", notes)

	return calendarBase + "?" + params.Encode()
}
