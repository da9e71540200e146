package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
)

func seededCache() *ProfileCache {
	cache := NewProfileCache()
	cache.SetProfile(&models.Profile{Username: "grace"})
	cache.SetSummary(&models.Summary{ScheduledAppointments: 2})
	return cache
}

func TestAppointmentService_BookAppliesOptimisticCommit(t *testing.T) {
	client := &fakeClient{
		CreateAppointmentRet: &models.Appointment{ID: "srv-1", Status: models.StatusPending},
	}
	cache := seededCache()
	svc := NewAppointmentService(client, cache, time.UTC, testLogger())

	created, err := svc.Book(context.Background(), BookingRequest{
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "09:30",
		AnimalID:  "a-1",
		Reason:    "limping",
	})
	require.NoError(t, err)
	require.Equal(t, "srv-1", created.ID)

	// Wire payload carries the combined instant.
	require.Equal(t, "2024-03-01T09:30:00.000Z", client.LastAppointment.AppointmentDate)
	require.NotNil(t, client.LastAppointment.AnimalID)
	require.Equal(t, "a-1", *client.LastAppointment.AnimalID)
	require.Nil(t, client.LastAppointment.VetID)

	// List and counter moved together.
	p := cache.Profile()
	require.Len(t, p.Appointments, 1)
	require.Equal(t, "srv-1", p.Appointments[0].ID)
	require.Equal(t, 3, cache.Summary().ScheduledAppointments)
}

func TestAppointmentService_BookFailureLeavesCacheUntouched(t *testing.T) {
	client := &fakeClient{CreateAppointmentErr: errors.New("boom")}
	cache := seededCache()
	svc := NewAppointmentService(client, cache, time.UTC, testLogger())

	_, err := svc.Book(context.Background(), BookingRequest{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	require.Empty(t, cache.Profile().Appointments)
	require.Equal(t, 2, cache.Summary().ScheduledAppointments)
}

func TestAppointmentService_BookValidationSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	svc := NewAppointmentService(client, seededCache(), time.UTC, testLogger())

	_, err := svc.Book(context.Background(), BookingRequest{})
	require.ErrorIs(t, err, common.ErrValidation)
	require.Equal(t, 0, client.Calls)
}

func TestAppointmentService_BookInvalidTimeOfDay(t *testing.T) {
	client := &fakeClient{}
	svc := NewAppointmentService(client, seededCache(), time.UTC, testLogger())

	_, err := svc.Book(context.Background(), BookingRequest{
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "25:99",
	})
	require.ErrorIs(t, err, common.ErrValidation)
	require.Equal(t, 0, client.Calls)
}

func TestAppointmentService_BookBackfillsSparseAck(t *testing.T) {
	// The server acknowledges with nothing but an id.
	client := &fakeClient{CreateAppointmentRet: &models.Appointment{ID: "srv-2"}}
	cache := seededCache()
	svc := NewAppointmentService(client, cache, time.UTC, testLogger())

	created, err := svc.Book(context.Background(), BookingRequest{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AnimalID: "a-9",
		VetID:    "v-1",
		Reason:   "deworming",
	})
	require.NoError(t, err)

	require.Equal(t, "2024-03-01T00:00:00.000Z", created.WhenRaw)
	require.True(t, created.Scheduled())
	require.Equal(t, "a-9", created.AnimalID)
	require.Equal(t, "v-1", created.VetID)
	require.Equal(t, "deworming", created.Reason)
	require.Equal(t, models.StatusPending, created.Status)
}

func TestAppointmentService_CalendarOverCachedAppointments(t *testing.T) {
	cache := NewProfileCache()
	cache.SetProfile(&models.Profile{
		Appointments: []models.Appointment{
			{ID: "1", When: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), WhenRaw: "x", Status: models.StatusConfirmed},
			{ID: "2", Status: models.StatusPending},
		},
	})
	svc := NewAppointmentService(&fakeClient{}, cache, time.UTC, testLogger())

	ix := svc.Calendar()
	require.Len(t, ix.ForKey("2024-03-01"), 1)
	require.Len(t, ix.ForKey("unscheduled"), 1)
}

func TestAppointmentService_CalendarEmptyCache(t *testing.T) {
	svc := NewAppointmentService(&fakeClient{}, NewProfileCache(), time.UTC, testLogger())

	ix := svc.Calendar()
	require.Empty(t, ix.ForKey("2024-03-01"))
}
