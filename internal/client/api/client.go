package api

import (
	"context"

	"github.com/meetavet/meetavet/internal/client/models"
)

// Client is the API contract against the Meet-A-Vet backend. Methods return
// normalized models; raw wire handling stays inside the implementation.
type Client interface {
	Close() error

	// Auth. Login variants return the bearer token issued by the server;
	// persisting it is the caller's concern.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	AdminLogin(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error

	// Profile and summary.
	Profile(ctx context.Context) (*models.Profile, error)
	Summary(ctx context.Context) (*models.Summary, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error
	AddAnimal(ctx context.Context, req models.AnimalRequest) (*models.Animal, error)

	// Appointments.
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)

	// Admin dashboard.
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminFarmers(ctx context.Context) ([]models.User, error)
	AdminVets(ctx context.Context) ([]models.User, error)
	AdminTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id string) error

	// Payments.
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (string, error)
	PaymentStatus(ctx context.Context, checkoutID string) (*models.PaymentStatus, error)
}
