package services

import (
	"context"
	"io"

	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(io.Discard, "error", false)
}

// fakeClient implements api.Client for service unit tests. Fields configure
// returned values/errors; Last* fields capture arguments, Calls counts the
// network round trips the service would have made.
type fakeClient struct {
	Calls int

	LoginRet string
	LoginErr error

	RegisterErr error

	ProfileRet *models.Profile
	ProfileErr error

	SummaryRet *models.Summary
	SummaryErr error

	UpdateProfileErr error

	AddAnimalRet *models.Animal
	AddAnimalErr error

	CreateAppointmentRet *models.Appointment
	CreateAppointmentErr error

	StatsRet *models.AdminStats
	StatsErr error

	FarmersRet []models.User
	FarmersErr error

	VetsRet []models.User
	VetsErr error

	TransactionsRet []models.Transaction
	TransactionsErr error

	UpdateUserErr error
	DeleteUserErr error

	InitiatePaymentRet string
	InitiatePaymentErr error

	PaymentStatusRet []*models.PaymentStatus // consumed in order; last repeats
	PaymentStatusErr error

	LastCredentials models.Credentials
	LastRegister    models.RegisterRequest
	LastAppointment models.AppointmentRequest
	LastAnimal      models.AnimalRequest
	LastPayment     models.PaymentRequest
	LastUserID      string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.Calls++
	f.LastCredentials = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) AdminLogin(ctx context.Context, creds models.Credentials) (string, error) {
	f.Calls++
	f.LastCredentials = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.Calls++
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	f.Calls++
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) Summary(ctx context.Context) (*models.Summary, error) {
	f.Calls++
	return f.SummaryRet, f.SummaryErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	f.Calls++
	return f.UpdateProfileErr
}

func (f *fakeClient) AddAnimal(ctx context.Context, req models.AnimalRequest) (*models.Animal, error) {
	f.Calls++
	f.LastAnimal = req
	return f.AddAnimalRet, f.AddAnimalErr
}

func (f *fakeClient) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	f.Calls++
	f.LastAppointment = req
	if f.CreateAppointmentErr != nil {
		return nil, f.CreateAppointmentErr
	}
	if f.CreateAppointmentRet != nil {
		cp := *f.CreateAppointmentRet
		return &cp, nil
	}
	return &models.Appointment{}, nil
}

func (f *fakeClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	f.Calls++
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) AdminFarmers(ctx context.Context) ([]models.User, error) {
	f.Calls++
	return f.FarmersRet, f.FarmersErr
}

func (f *fakeClient) AdminVets(ctx context.Context) ([]models.User, error) {
	f.Calls++
	return f.VetsRet, f.VetsErr
}

func (f *fakeClient) AdminTransactions(ctx context.Context) ([]models.Transaction, error) {
	f.Calls++
	return f.TransactionsRet, f.TransactionsErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	f.Calls++
	f.LastUserID = id
	return f.UpdateUserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.Calls++
	f.LastUserID = id
	return f.DeleteUserErr
}

func (f *fakeClient) InitiatePayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	f.Calls++
	f.LastPayment = req
	return f.InitiatePaymentRet, f.InitiatePaymentErr
}

func (f *fakeClient) PaymentStatus(ctx context.Context, checkoutID string) (*models.PaymentStatus, error) {
	f.Calls++
	if f.PaymentStatusErr != nil {
		return nil, f.PaymentStatusErr
	}
	if len(f.PaymentStatusRet) == 0 {
		return &models.PaymentStatus{Status: models.PaymentPending}, nil
	}
	next := f.PaymentStatusRet[0]
	if len(f.PaymentStatusRet) > 1 {
		f.PaymentStatusRet = f.PaymentStatusRet[1:]
	}
	return next, nil
}
