// Package services contains the application services of the Meet-A-Vet
// client. This file defines the authentication service: login, registration,
// admin login, and housekeeping of the persisted credential.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/meetavet/meetavet/internal/client/api"
	"github.com/meetavet/meetavet/internal/client/credential"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login/AdminLogin: authenticate against the server and persist the
//     issued credential.
//   - Register: create a new account; input is validated locally first and
//     a password/confirmation mismatch never reaches the network.
//   - Logout: clear the persisted credential and cached data.
//   - LoggedIn/Role: inspect the current session without network calls.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	AdminLogin(ctx context.Context, email, password string) error
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	Role(ctx context.Context) string
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and the local credential store.
type authService struct {
	client   api.Client
	store    credential.Store
	cache    *ProfileCache
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store, and cache.
func NewAuthService(client api.Client, store credential.Store, cache *ProfileCache, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Login authenticates against the server and persists the issued credential.
func (a *authService) Login(ctx context.Context, email, password string) error {
	return a.login(ctx, email, password, a.client.Login)
}

// AdminLogin authenticates against the admin endpoint.
func (a *authService) AdminLogin(ctx context.Context, email, password string) error {
	return a.login(ctx, email, password, a.client.AdminLogin)
}

func (a *authService) login(ctx context.Context, email, password string,
	call func(context.Context, models.Credentials) (string, error)) error {

	creds := models.Credentials{Email: email, Password: password}
	if err := a.validate.Struct(creds); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	token, err := call(ctx, creds)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if token == "" {
		return fmt.Errorf("%w: no token in login response", api.ErrServer)
	}

	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("credential saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Register validates the submission locally and creates the account on the
// server. The confirmation password is compared client-side and never sent.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if err := a.client.Register(ctx, req); err != nil {
		return err
	}
	return nil
}

// Logout clears the persisted credential and the cached profile data.
// Clearing an absent credential is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	a.cache.Clear()
	return a.store.Clear(ctx)
}

// LoggedIn reports whether a locally valid credential is stored. It never
// touches the network.
func (a *authService) LoggedIn(ctx context.Context) bool {
	token, err := a.store.Get(ctx)
	if err != nil || token == "" {
		return false
	}
	return credential.Validate(token, timeNow()) == nil
}

// Role returns the role claim of the current credential, or "" when there is
// no usable session.
func (a *authService) Role(ctx context.Context) string {
	token, err := a.store.Get(ctx)
	if err != nil || token == "" {
		return ""
	}
	claims, err := credential.Claims(token)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
