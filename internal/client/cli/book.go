package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/meetavet/meetavet/internal/client/services"
)

// Book walks the user through booking an appointment: pick a date, an
// optional time of day, one of the registered animals, and a reason.
func (a *App) Book(ctx context.Context) error {
	dateStr, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		printlnFn("Invalid date, expected YYYY-MM-DD")
		return err
	}

	timeOfDay, err := GetSimpleText(a.reader, "Time (HH:MM, empty for whole day)", os.Stdout)
	if err != nil {
		return err
	}

	animalID, err := a.pickAnimal(ctx)
	if err != nil {
		return err
	}

	vetID, err := GetSimpleText(a.reader, "Vet id (empty to let the clinic assign one)", os.Stdout)
	if err != nil {
		return err
	}

	reason, err := GetSimpleText(a.reader, "Reason for the visit", os.Stdout)
	if err != nil {
		return err
	}

	appt, err := a.appointmentService.Book(ctx, services.BookingRequest{
		Date:      date,
		TimeOfDay: timeOfDay,
		AnimalID:  animalID,
		VetID:     vetID,
		Reason:    reason,
	})
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("Booked:", formatAppointment(*appt))
	return nil
}

// pickAnimal shows the registered animals and returns the chosen id. An
// empty answer (or an empty herd) books without an animal reference.
func (a *App) pickAnimal(ctx context.Context) (string, error) {
	profile := a.profileService.Cache().Profile()
	if profile == nil {
		p, err := a.profileService.Fetch(ctx)
		if err != nil {
			a.reportErr(ctx, err)
			return "", err
		}
		profile = p
	}

	if len(profile.Animals) == 0 {
		return "", nil
	}

	printlnFn("Animals:")
	for i, an := range profile.Animals {
		printlnFn(fmt.Sprintf("  %d. %s (%s)", i+1, an.DisplayName(), an.Species))
	}
	choice, err := GetSimpleText(a.reader, "Pick an animal number (empty for none)", os.Stdout)
	if err != nil {
		return "", err
	}
	if choice == "" {
		return "", nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(profile.Animals) {
		printlnFn("Invalid choice, booking without an animal")
		return "", nil
	}
	return profile.Animals[n-1].ID, nil
}
