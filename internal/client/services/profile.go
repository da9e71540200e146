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

// ProfileService fetches and mutates the user's profile/summary aggregate.
// Fetches replace the cache wholesale; AddAnimal merges optimistically on
// success.
type ProfileService interface {
	Fetch(ctx context.Context) (*models.Profile, error)
	FetchSummary(ctx context.Context) (*models.Summary, error)
	Update(ctx context.Context, upd models.ProfileUpdate) error
	AddAnimal(ctx context.Context, req models.AnimalRequest) (*models.Animal, error)
	Cache() *ProfileCache
}

type profileService struct {
	client   api.Client
	cache    *ProfileCache
	validate *validator.Validate
	log      logging.Logger
}

func NewProfileService(client api.Client, cache *ProfileCache, log logging.Logger) ProfileService {
	return &profileService{
		client:   client,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

func (s *profileService) Fetch(ctx context.Context) (*models.Profile, error) {
	p, err := s.client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile fetch error: %w", err)
	}
	s.cache.SetProfile(p)
	return s.cache.Profile(), nil
}

func (s *profileService) FetchSummary(ctx context.Context) (*models.Summary, error) {
	sum, err := s.client.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary fetch error: %w", err)
	}
	s.cache.SetSummary(sum)
	return s.cache.Summary(), nil
}

func (s *profileService) Update(ctx context.Context, upd models.ProfileUpdate) error {
	if err := s.validate.Struct(upd); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if err := s.client.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	s.log.Info(ctx, "profile updated", "username", upd.Username)
	return nil
}

// AddAnimal creates the animal on the server and, on success, merges it into
// the cached profile and summary counts. On failure nothing changes locally.
func (s *profileService) AddAnimal(ctx context.Context, req models.AnimalRequest) (*models.Animal, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	created, err := s.client.AddAnimal(ctx, req)
	if err != nil {
		return nil, err
	}
	if created.Name == "" {
		// Server may answer with a bare acknowledgement; keep the local view
		// consistent with what was submitted.
		created.Name = req.Name
		created.Species = req.Species
	}

	s.cache.ApplyAnimal(*created)
	s.log.Info(ctx, "animal added", "name", created.Name, "species", created.Species)
	return created, nil
}

func (s *profileService) Cache() *ProfileCache {
	return s.cache
}
