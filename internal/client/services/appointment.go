package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meetavet/meetavet/internal/client/api"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/client/schedule"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

// BookingRequest is a booking form submission: the selected calendar date,
// an optional "HH:MM" time of day, and the appointment details.
type BookingRequest struct {
	Date      time.Time `validate:"required"`
	TimeOfDay string
	AnimalID  string
	VetID     string
	Reason    string
}

// AppointmentService books appointments and applies the optimistic local
// commit to the cached profile data.
type AppointmentService interface {
	// Book submits the request. On success the returned appointment has been
	// appended to the cached list and the scheduled counter incremented, as
	// one atomic cache mutation. On failure the cache is untouched.
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)

	// Calendar builds the day index over the cached appointments.
	Calendar() *schedule.Index
}

type appointmentService struct {
	client   api.Client
	cache    *ProfileCache
	loc      *time.Location
	validate *validator.Validate
	log      logging.Logger
}

// NewAppointmentService constructs an AppointmentService. loc is the
// calendar's location; nil means local time.
func NewAppointmentService(client api.Client, cache *ProfileCache, loc *time.Location, log logging.Logger) AppointmentService {
	if loc == nil {
		loc = time.Local
	}
	return &appointmentService{
		client:   client,
		cache:    cache,
		loc:      loc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

func (s *appointmentService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	when, err := schedule.CombineDateTime(req.Date, req.TimeOfDay, s.loc)
	if err != nil {
		return nil, err
	}

	payload := models.AppointmentRequest{
		VetID:           optional(req.VetID),
		AnimalID:        optional(req.AnimalID),
		AppointmentDate: when,
		Reason:          req.Reason,
	}

	created, err := s.client.CreateAppointment(ctx, payload)
	if err != nil {
		return nil, err
	}
	fillFromRequest(created, payload)

	s.cache.ApplyAppointment(*created)
	s.log.Info(ctx, "appointment booked", "id", created.ID, "when", when)
	return created, nil
}

func (s *appointmentService) Calendar() *schedule.Index {
	p := s.cache.Profile()
	if p == nil {
		return schedule.IndexByDay(nil, s.loc)
	}
	return schedule.IndexByDay(p.Appointments, s.loc)
}

// fillFromRequest backfills fields a sparse server acknowledgement may omit,
// so the optimistic record is still renderable. New records are pending; the
// client never assigns any other status.
func fillFromRequest(a *models.Appointment, req models.AppointmentRequest) {
	if a.WhenRaw == "" {
		a.WhenRaw = req.AppointmentDate
		a.When, _ = models.ParseWireTime(req.AppointmentDate)
	}
	if a.AnimalID == "" && req.AnimalID != nil {
		a.AnimalID = *req.AnimalID
	}
	if a.VetID == "" && req.VetID != nil {
		a.VetID = *req.VetID
	}
	if a.Reason == "" {
		a.Reason = req.Reason
	}
	if a.Status == "" {
		a.Status = models.StatusPending
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
