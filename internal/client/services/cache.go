package services

import (
	"sync"

	"github.com/meetavet/meetavet/internal/client/models"
)

// ProfileCache is the client-held profile/summary aggregate. Fetches replace
// its contents wholesale; successful create operations merge into it. All
// mutation goes through methods, and the appointment-apply path updates the
// list and the scheduled counter in one critical section so callers can
// never observe one without the other.
type ProfileCache struct {
	mu      sync.Mutex
	profile *models.Profile
	summary *models.Summary
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{}
}

// SetProfile replaces the cached profile.
func (c *ProfileCache) SetProfile(p *models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = p
}

// SetSummary replaces the cached summary.
func (c *ProfileCache) SetSummary(s *models.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = s
}

// Profile returns a snapshot of the cached profile, or nil before the first
// fetch. The appointment and animal slices are copied so callers cannot
// alias cache state.
func (c *ProfileCache) Profile() *models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return nil
	}
	snap := *c.profile
	snap.Animals = append([]models.Animal(nil), c.profile.Animals...)
	snap.Appointments = append([]models.Appointment(nil), c.profile.Appointments...)
	return &snap
}

// Summary returns a snapshot of the cached summary, or nil before the first
// fetch.
func (c *ProfileCache) Summary() *models.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary == nil {
		return nil
	}
	snap := *c.summary
	snap.SpeciesDistribution = make(map[string]int, len(c.summary.SpeciesDistribution))
	for k, v := range c.summary.SpeciesDistribution {
		snap.SpeciesDistribution[k] = v
	}
	return &snap
}

// ApplyAppointment commits an optimistic appointment: it appends to the
// cached list and bumps the scheduled counter atomically.
func (c *ProfileCache) ApplyAppointment(a models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile != nil {
		c.profile.Appointments = append(c.profile.Appointments, a)
	}
	if c.summary != nil {
		c.summary.ApplyAppointment()
	}
}

// ApplyAnimal commits a newly created animal into the profile and the
// summary counts.
func (c *ProfileCache) ApplyAnimal(a models.Animal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile != nil {
		c.profile.Animals = append(c.profile.Animals, a)
	}
	if c.summary != nil {
		c.summary.ApplyAnimal(a)
	}
}

// Clear drops all cached state (e.g. on logout).
func (c *ProfileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = nil
	c.summary = nil
}
