package models

import "encoding/json"

// Role values accepted at registration.
const (
	RoleFarmer  = "farmer"
	RoleSurgeon = "surgeon"
)

// Credentials is the POST /login and /admin-login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the POST /register payload. ConfirmPassword is checked
// client-side and never sent.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=farmer surgeon"`
}

// User is an account row in the admin lists (farmers and vets).
type User struct {
	ID     string
	Name   string
	Email  string
	Active bool
}

type userWire struct {
	ID      flexString `json:"id"`
	MongoID flexString `json:"_id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Active  bool       `json:"active"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	u.ID = firstNonEmpty(string(w.ID), string(w.MongoID))
	u.Name = w.Name
	u.Email = w.Email
	u.Active = w.Active
	return nil
}

// UserUpdate is the PUT /api/admin/users/{id} payload.
type UserUpdate struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Active *bool  `json:"active,omitempty"`
}

// AdminStats are the dashboard analytics totals.
type AdminStats struct {
	TotalFarmers           int `json:"totalFarmers"`
	TotalVets              int `json:"totalVets"`
	TotalTransactions      int `json:"totalTransactions"`
	SuccessfulTransactions int `json:"successfulTransactions"`
}

// SuccessRate is the fraction of successful transactions in [0,1].
// Returns 0 when there are no transactions.
func (s AdminStats) SuccessRate() float64 {
	if s.TotalTransactions == 0 {
		return 0
	}
	return float64(s.SuccessfulTransactions) / float64(s.TotalTransactions)
}

// Transaction is a payment row in the admin report.
type Transaction struct {
	ID        string
	Amount    float64
	Status    string
	CreatedAt string
}

type transactionWire struct {
	ID        flexString `json:"id"`
	MongoID   flexString `json:"_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"created_at"`
	Created   string     `json:"createdAt"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.ID = firstNonEmpty(string(w.ID), string(w.MongoID))
	t.Amount = w.Amount
	t.Status = w.Status
	t.CreatedAt = firstNonEmpty(w.CreatedAt, w.Created)
	return nil
}
