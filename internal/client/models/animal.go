package models

import "encoding/json"

// Animal is a farmer-owned animal record.
type Animal struct {
	ID      string
	Name    string
	Species string
}

type animalWire struct {
	ID      flexString `json:"id"`
	MongoID flexString `json:"_id"`
	Name    string     `json:"name"`
	Species string     `json:"species"`
	Type    string     `json:"type"`
}

func (a *Animal) UnmarshalJSON(data []byte) error {
	var w animalWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.ID = firstNonEmpty(string(w.ID), string(w.MongoID))
	a.Name = w.Name
	a.Species = firstNonEmpty(w.Species, w.Type)
	return nil
}

// DisplayName is the label shown in pickers, falling back to the id.
func (a Animal) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return "ID: " + a.ID
}

// AnimalRequest is the POST /api/add_animal payload.
type AnimalRequest struct {
	Name    string `json:"name" validate:"required"`
	Species string `json:"species" validate:"required"`
}
