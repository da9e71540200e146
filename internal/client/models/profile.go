package models

import "encoding/json"

// Profile is the client-held view of the logged-in user: identity fields
// plus the owned animals and appointments. It is replaced wholesale on each
// GET /api/profile.
type Profile struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Location     string
	Phone1       string
	Phone2       string
	Animals      []Animal
	Appointments []Appointment
}

type profileWire struct {
	ID            flexString    `json:"id"`
	MongoID       flexString    `json:"_id"`
	UserID        flexString    `json:"user_id"`
	Username      string        `json:"username"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email"`
	Location      string        `json:"location"`
	Phone1        string        `json:"phone1"`
	Phone2        string        `json:"phone2"`
	AnimalRecords []Animal      `json:"animalRecords"`
	Animals       []Animal      `json:"animals"`
	Appointments  []Appointment `json:"appointments"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var w profileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.ID = firstNonEmpty(string(w.ID), string(w.MongoID), string(w.UserID))
	p.Username = w.Username
	p.FirstName = w.FirstName
	p.LastName = w.LastName
	p.Email = w.Email
	p.Location = w.Location
	p.Phone1 = w.Phone1
	p.Phone2 = w.Phone2
	p.Animals = w.AnimalRecords
	if len(p.Animals) == 0 {
		p.Animals = w.Animals
	}
	p.Appointments = w.Appointments
	return nil
}

// ProfileUpdate is the PUT /api/profile payload.
type ProfileUpdate struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Location  string `json:"location"`
	Phone1    string `json:"phone1"`
	Phone2    string `json:"phone2"`
}

// Summary holds the derived counts shown on the dashboard. It is replaced
// wholesale on each GET /api/summary and merged locally after successful
// create operations.
type Summary struct {
	TotalAnimals          int            `json:"totalAnimals"`
	TotalSpecies          int            `json:"totalSpecies"`
	ScheduledAppointments int            `json:"scheduledAppointments"`
	SpeciesDistribution   map[string]int `json:"speciesDistribution"`
}

// ApplyAnimal merges a newly created animal into the counts.
func (s *Summary) ApplyAnimal(a Animal) {
	if s.SpeciesDistribution == nil {
		s.SpeciesDistribution = make(map[string]int)
	}
	s.TotalAnimals++
	if a.Species != "" {
		if _, known := s.SpeciesDistribution[a.Species]; !known {
			s.TotalSpecies++
		}
		s.SpeciesDistribution[a.Species]++
	}
}

// ApplyAppointment counts a newly booked appointment.
func (s *Summary) ApplyAppointment() {
	s.ScheduledAppointments++
}
