// Package schedule is the calendar view-model: it indexes appointment
// records by day, derives per-day status markers, and builds the combined
// date+time instant for new bookings.
package schedule

import (
	"time"

	"github.com/meetavet/meetavet/internal/client/models"
)

// DayKey identifies a calendar day ("2006-01-02" in the index's location).
type DayKey string

// DayKeyUnscheduled collects appointments whose timestamp could not be
// parsed; they are kept visible instead of being dropped.
const DayKeyUnscheduled DayKey = "unscheduled"

const dayKeyLayout = "2006-01-02"

// KeyFor returns the day key of an instant in the given location.
func KeyFor(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

// Index is a date-indexed view over a flat appointment collection. Within a
// day, appointments keep the insertion order of the source slice; no
// time-of-day sorting is applied.
type Index struct {
	loc   *time.Location
	byDay map[DayKey][]models.Appointment
}

// IndexByDay groups appointments by their scheduled calendar day in loc
// (local time when loc is nil). Re-running on the same input yields an
// identical grouping.
func IndexByDay(appts []models.Appointment, loc *time.Location) *Index {
	if loc == nil {
		loc = time.Local
	}
	ix := &Index{loc: loc, byDay: make(map[DayKey][]models.Appointment)}
	for _, a := range appts {
		key := DayKeyUnscheduled
		if a.Scheduled() {
			key = KeyFor(a.When, loc)
		}
		ix.byDay[key] = append(ix.byDay[key], a)
	}
	return ix
}

// ForKey returns the appointments indexed under key, in insertion order.
func (ix *Index) ForKey(key DayKey) []models.Appointment {
	return ix.byDay[key]
}

// ForDay returns the appointments on the calendar day containing t.
func (ix *Index) ForDay(t time.Time) []models.Appointment {
	return ix.byDay[KeyFor(t, ix.loc)]
}

// Marker is a calendar-cell indicator color.
type Marker string

const (
	MarkerRed    Marker = "red"    // at least one rejected appointment
	MarkerGreen  Marker = "green"  // confirmed, no rejected
	MarkerYellow Marker = "yellow" // pending only
)

func markerFor(s models.Status) Marker {
	switch s {
	case models.StatusRejected:
		return MarkerRed
	case models.StatusConfirmed:
		return MarkerGreen
	default:
		return MarkerYellow
	}
}

// severity orders markers red > green > yellow.
func severity(m Marker) int {
	switch m {
	case MarkerRed:
		return 0
	case MarkerGreen:
		return 1
	default:
		return 2
	}
}

// Markers derives up to 3 indicator dots for a day, severity-ordered so the
// most important statuses are visible when the set is truncated. Returns nil
// for a day with no appointments.
func (ix *Index) Markers(key DayKey) []Marker {
	appts := ix.byDay[key]
	if len(appts) == 0 {
		return nil
	}

	var counts [3]int
	for _, a := range appts {
		counts[severity(markerFor(a.Status))]++
	}

	markers := make([]Marker, 0, 3)
	for _, m := range []Marker{MarkerRed, MarkerGreen, MarkerYellow} {
		for i := 0; i < counts[severity(m)] && len(markers) < 3; i++ {
			markers = append(markers, m)
		}
	}
	return markers
}

// DominantMarker is the single color summarizing a day, with the fixed
// tie-break: any rejected wins red, else any confirmed wins green, else
// yellow. ok is false when the day has no appointments.
func (ix *Index) DominantMarker(key DayKey) (marker Marker, ok bool) {
	appts := ix.byDay[key]
	if len(appts) == 0 {
		return "", false
	}
	best := MarkerYellow
	for _, a := range appts {
		if m := markerFor(a.Status); severity(m) < severity(best) {
			best = m
		}
	}
	return best, true
}
