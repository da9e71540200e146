package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/meetavet/meetavet/internal/client/models"
)

// Profile fetches and prints the profile with its registered animals and
// appointments.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profileService.Fetch(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("Profile")
	printlnFn("  Username:", p.Username)
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		printlnFn("  Name:    ", name)
	}
	printlnFn("  Email:   ", p.Email)
	if p.Location != "" {
		printlnFn("  Location:", p.Location)
	}
	if p.Phone1 != "" {
		printlnFn("  Phone:   ", p.Phone1)
	}

	printlnFn(fmt.Sprintf("Animals (%d)", len(p.Animals)))
	for _, an := range p.Animals {
		printlnFn(fmt.Sprintf("  - %s (%s)", an.DisplayName(), an.Species))
	}

	printlnFn(fmt.Sprintf("Appointments (%d)", len(p.Appointments)))
	for _, ap := range p.Appointments {
		printlnFn("  - " + formatAppointment(ap))
	}
	return nil
}

// Summary fetches and prints the dashboard totals.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.profileService.FetchSummary(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("Summary")
	printlnFn("  Animals:               ", s.TotalAnimals)
	printlnFn("  Species:               ", s.TotalSpecies)
	printlnFn("  Scheduled appointments:", s.ScheduledAppointments)

	if len(s.SpeciesDistribution) > 0 {
		species := make([]string, 0, len(s.SpeciesDistribution))
		for sp := range s.SpeciesDistribution {
			species = append(species, sp)
		}
		sort.Strings(species)
		printlnFn("  By species:")
		for _, sp := range species {
			printlnFn(fmt.Sprintf("    %s: %d", sp, s.SpeciesDistribution[sp]))
		}
	}
	return nil
}

// UpdateProfile prompts for the editable profile fields and submits them.
// Empty answers keep the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	current := a.profileService.Cache().Profile()
	if current == nil {
		p, err := a.profileService.Fetch(ctx)
		if err != nil {
			a.reportErr(ctx, err)
			return err
		}
		current = p
	}

	upd := models.ProfileUpdate{
		Username:  current.Username,
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Email:     current.Email,
		Location:  current.Location,
		Phone1:    current.Phone1,
		Phone2:    current.Phone2,
	}

	fields := []struct {
		prompt string
		target *string
	}{
		{"Username", &upd.Username},
		{"First name", &upd.FirstName},
		{"Last name", &upd.LastName},
		{"Email", &upd.Email},
		{"Location", &upd.Location},
		{"Phone 1", &upd.Phone1},
		{"Phone 2", &upd.Phone2},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.target), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.target = v
		}
	}

	if err := a.profileService.Update(ctx, upd); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Profile updated")
	return nil
}

// AddAnimal registers a new animal for the logged-in farmer.
func (a *App) AddAnimal(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Animal name", os.Stdout)
	if err != nil {
		return err
	}
	species, err := GetSimpleText(a.reader, "Species (e.g. cow, goat, sheep)", os.Stdout)
	if err != nil {
		return err
	}

	an, err := a.profileService.AddAnimal(ctx, models.AnimalRequest{Name: name, Species: species})
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Added %s (%s)", an.DisplayName(), an.Species))
	return nil
}

func formatAppointment(ap models.Appointment) string {
	when := ap.WhenRaw
	if ap.Scheduled() {
		when = ap.When.Local().Format("2006-01-02 15:04")
	}
	if when == "" {
		when = "unscheduled"
	}
	line := fmt.Sprintf("%s  %s with %s [%s]", when, ap.DisplayAnimal(), ap.DisplayVet(), ap.Status)
	if ap.Reason != "" {
		line += " — " + ap.Reason
	}
	return line
}
