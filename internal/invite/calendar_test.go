package invite

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestCalendarLink(t *testing.T) {
	start := time.Date(2026, 11, 14, 15, 30, 0, 0, time.UTC)

	link := CalendarLink("Reception", start, "Grand Marriott Hotel, Kerala", "Dress code: formal")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Fatalf("unexpected endpoint: %s", link)
	}

	q := u.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q", q.Get("action"))
	}
	if q.Get("text") != "Reception" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("location") != "Grand Marriott Hotel, Kerala" {
		t.Errorf("location = %q", q.Get("location"))
	}
	if q.Get("details") != "Dress code: formal" {
		t.Errorf("details = %q", q.Get("details"))
	}

	// Three hour default window, UTC basic format.
	if q.Get("dates") != "20261114T153000Z/20261114T183000Z" {
		t.Errorf("dates = %q", q.Get("dates"))
	}
}

func TestCalendarLinkConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(2026, 11, 14, 18, 0, 0, 0, loc)

	link := CalendarLink("Sangeet", start, "", "")
	if !strings.Contains(link, "20261114T123000Z%2F20261114T153000Z") &&
		!strings.Contains(link, "20261114T123000Z/20261114T153000Z") {
		t.Fatalf("dates window not in UTC: %s", link)
	}
}
