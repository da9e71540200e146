// Package models defines the client-side entities of the Meet-A-Vet API and
// the single deserialization step that normalizes the backend's loose JSON
// (alias field names, mixed id types, free-form status strings) into explicit
// typed values. Rendering and scheduling code never touches wire fallbacks.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Status classifies an appointment. The lifecycle is server-owned:
// pending → confirmed or pending → rejected; the client only reflects it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// NormalizeStatus lower-cases a wire status and maps it onto the three
// enumerated values. "approved" is an alias for confirmed; anything unknown
// or missing is treated as pending.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "confirmed", "approved":
		return StatusConfirmed
	case "rejected":
		return StatusRejected
	default:
		return StatusPending
	}
}

// Appointment is a scheduled meeting between a farmer and a vet.
//
// When is the zero time if the server sent no parseable timestamp; WhenRaw
// keeps the original wire value so such records can still be keyed.
type Appointment struct {
	ID         string
	AnimalID   string
	AnimalName string
	VetID      string
	VetName    string
	When       time.Time
	WhenRaw    string
	Reason     string
	Status     Status
	CreatedAt  time.Time
}

// appointmentWire mirrors every field spelling the backend has been seen to
// produce. Normalization happens exactly once, in UnmarshalJSON.
type appointmentWire struct {
	AppointmentID   flexString `json:"appointment_id"`
	ID              flexString `json:"id"`
	MongoID         flexString `json:"_id"`
	AnimalID        flexString `json:"animal_id"`
	AnimalName      string     `json:"animalName"`
	Animal          *refWire   `json:"animal"`
	VetID           flexString `json:"vet_id"`
	VetName         string     `json:"vetName"`
	Vet             *refWire   `json:"vet"`
	AppointmentDate string     `json:"appointment_date"`
	Description     string     `json:"description"`
	Reason          string     `json:"reason"`
	ReasonText      string     `json:"reason_text"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"created_at"`
	CreatedAtCamel  string     `json:"createdAt"`
}

// refWire is an embedded animal/vet reference.
type refWire struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	var w appointmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	a.ID = firstNonEmpty(string(w.AppointmentID), string(w.ID), string(w.MongoID))

	a.AnimalID = string(w.AnimalID)
	a.AnimalName = w.AnimalName
	if w.Animal != nil {
		a.AnimalID = firstNonEmpty(a.AnimalID, string(w.Animal.ID))
		a.AnimalName = firstNonEmpty(a.AnimalName, w.Animal.Name)
	}

	a.VetID = string(w.VetID)
	a.VetName = w.VetName
	if w.Vet != nil {
		a.VetID = firstNonEmpty(a.VetID, string(w.Vet.ID))
		a.VetName = firstNonEmpty(a.VetName, w.Vet.Name)
	}

	a.WhenRaw = w.AppointmentDate
	a.When, _ = ParseWireTime(w.AppointmentDate)
	a.Reason = firstNonEmpty(w.Description, w.Reason, w.ReasonText)
	a.Status = NormalizeStatus(w.Status)
	a.CreatedAt, _ = ParseWireTime(firstNonEmpty(w.CreatedAt, w.CreatedAtCamel))

	return nil
}

// DisplayAnimal is the label shown for the appointment's animal. The
// fallback order matches what the backend actually populates.
func (a Appointment) DisplayAnimal() string {
	return firstNonEmpty(a.AnimalName, a.AnimalID, "Animal")
}

// DisplayVet returns the vet label, or "" when no vet is attached.
func (a Appointment) DisplayVet() string {
	return firstNonEmpty(a.VetName, a.VetID)
}

// Scheduled reports whether the appointment carries a parseable timestamp.
func (a Appointment) Scheduled() bool {
	return !a.When.IsZero()
}

// AppointmentRequest is the POST /api/appointments payload.
type AppointmentRequest struct {
	VetID           *string `json:"vet_id"`
	AnimalID        *string `json:"animal_id"`
	AppointmentDate string  `json:"appointment_date"`
	Reason          string  `json:"reason"`
}

// wireTimeLayouts are tried in order when parsing server timestamps.
var wireTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWireTime parses a timestamp in any of the formats the backend emits.
// Returns the zero time and false for empty or unrecognized input.
func ParseWireTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// flexString decodes a JSON string, number, or null into a plain string.
// The backend is not consistent about id types.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
