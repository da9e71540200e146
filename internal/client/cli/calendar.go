package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/meetavet/meetavet/internal/client/schedule"
)

// markerDots maps marker colors to their terminal rendering.
var markerDots = map[schedule.Marker]string{
	schedule.MarkerRed:    "R",
	schedule.MarkerGreen:  "G",
	schedule.MarkerYellow: "Y",
}

// Calendar prints a month overview: each day that has appointments gets a
// line with its status dots. month is "YYYY-MM"; empty means the current
// month.
func (a *App) Calendar(ctx context.Context, month string) error {
	if err := a.ensureAppointments(ctx); err != nil {
		return err
	}

	first := time.Now().Local()
	if month != "" {
		var err error
		first, err = time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			printlnFn("Invalid month, expected YYYY-MM")
			return err
		}
	}
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)

	ix := a.appointmentService.Calendar()

	printlnFn(first.Format("January 2006"))
	busy := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := schedule.KeyFor(d, time.Local)
		markers := ix.Markers(key)
		if len(markers) == 0 {
			continue
		}
		busy++
		dots := ""
		for _, m := range markers {
			dots += markerDots[m] + " "
		}
		count := len(ix.ForKey(key))
		printlnFn(fmt.Sprintf("  %s  %s (%d appointment(s))", key, dots, count))
	}
	if busy == 0 {
		printlnFn("  no appointments this month")
	}

	if un := ix.ForKey(schedule.DayKeyUnscheduled); len(un) > 0 {
		printlnFn(fmt.Sprintf("  unscheduled: %d appointment(s)", len(un)))
	}
	return nil
}

// Day prints the appointments on a single calendar day ("YYYY-MM-DD").
func (a *App) Day(ctx context.Context, date string) error {
	if date == "" {
		printlnFn("Usage: day YYYY-MM-DD")
		return nil
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		printlnFn("Invalid date, expected YYYY-MM-DD")
		return err
	}

	if err := a.ensureAppointments(ctx); err != nil {
		return err
	}

	ix := a.appointmentService.Calendar()
	appts := ix.ForKey(schedule.DayKey(date))
	if len(appts) == 0 {
		printlnFn("No appointments on", date)
		return nil
	}

	printlnFn(date)
	for _, ap := range appts {
		printlnFn("  - " + formatAppointment(ap))
	}
	return nil
}

// ensureAppointments makes sure the cache holds a profile so the calendar
// has data to index.
func (a *App) ensureAppointments(ctx context.Context) error {
	if a.profileService.Cache().Profile() != nil {
		return nil
	}
	if _, err := a.profileService.Fetch(ctx); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	return nil
}
