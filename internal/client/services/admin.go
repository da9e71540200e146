package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/meetavet/meetavet/internal/client/api"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

// AdminOverview aggregates the dashboard data. Sections that failed to load
// are left nil/empty; Err carries the first failure for display.
type AdminOverview struct {
	Stats        *models.AdminStats
	Farmers      []models.User
	Vets         []models.User
	Transactions []models.Transaction
	Err          error
}

// AdminService drives the admin dashboard: analytics plus simple user
// management.
type AdminService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id string) error
}

type adminService struct {
	client   api.Client
	validate *validator.Validate
	log      logging.Logger
}

func NewAdminService(client api.Client, log logging.Logger) AdminService {
	return &adminService{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Overview loads all dashboard sections. A failing section does not abort
// the others; partial data is returned with Err set. Only a credential error
// aborts immediately, since every later call would fail the same way.
func (s *adminService) Overview(ctx context.Context) (*AdminOverview, error) {
	ov := &AdminOverview{}

	keep := func(err error) error {
		if err != nil {
			s.log.Warn(ctx, "admin section unavailable", "error", err)
			if ov.Err == nil {
				ov.Err = err
			}
		}
		return err
	}

	var err error
	if ov.Stats, err = s.client.AdminStats(ctx); keep(err) != nil && isCredentialErr(err) {
		return nil, err
	}
	if ov.Farmers, err = s.client.AdminFarmers(ctx); keep(err) != nil && isCredentialErr(err) {
		return nil, err
	}
	if ov.Vets, err = s.client.AdminVets(ctx); keep(err) != nil && isCredentialErr(err) {
		return nil, err
	}
	if ov.Transactions, err = s.client.AdminTransactions(ctx); keep(err) != nil && isCredentialErr(err) {
		return nil, err
	}

	return ov, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	if err := s.validate.Struct(upd); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if err := s.client.UpdateUser(ctx, id, upd); err != nil {
		return err
	}
	s.log.Info(ctx, "user updated", "id", id)
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}
