package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meetavet/meetavet/internal/common"
)

// isoLayout serializes instants the way the backend expects them:
// ISO-8601 with millisecond precision, "Z" when the instant is UTC.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// CombineDateTime builds the appointment_date instant from a selected
// calendar date and an optional "HH:MM" time of day.
//
// With a time of day, the instant is the date's year/month/day at that
// wall-clock time in loc, seconds and milliseconds zeroed, serialized in
// UTC. Without one, the instant is UTC midnight of the selected date. The
// two conventions are deliberately different; both are part of the wire
// contract.
func CombineDateTime(date time.Time, timeOfDay string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	timeOfDay = strings.TrimSpace(timeOfDay)
	if timeOfDay == "" {
		y, m, d := date.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(isoLayout), nil
	}

	hh, mm, err := parseClock(timeOfDay)
	if err != nil {
		return "", err
	}

	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, hh, mm, 0, 0, loc).UTC().Format(isoLayout), nil
}

// parseClock accepts "HH:MM"; a missing or empty minute part counts as 0.
func parseClock(s string) (hh, mm int, err error) {
	parts := strings.SplitN(s, ":", 2)

	hh, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hh < 0 || hh > 23 {
		return 0, 0, fmt.Errorf("%w: invalid time of day %q", common.ErrValidation, s)
	}

	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		mm, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || mm < 0 || mm > 59 {
			return 0, 0, fmt.Errorf("%w: invalid time of day %q", common.ErrValidation, s)
		}
	}

	return hh, mm, nil
}
