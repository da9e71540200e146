package cli

import (
	"context"
	"os"

	"github.com/meetavet/meetavet/internal/client/models"
)

// Register walks the user through account creation. The confirmation
// password is compared locally; a mismatch never reaches the server.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	role, err := GetSimpleText(a.reader, "Account type (farmer/surgeon)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		Role:            role,
	}
	if err := a.authService.Register(ctx, req); err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("Account created. You can now log in.")
	return nil
}

// Login authenticates as a farmer or a vet and persists the credential.
func (a *App) Login(ctx context.Context) error {
	return a.loginWith(ctx, a.authService.Login)
}

// AdminLogin authenticates against the administrator endpoint.
func (a *App) AdminLogin(ctx context.Context) error {
	return a.loginWith(ctx, a.authService.AdminLogin)
}

func (a *App) loginWith(ctx context.Context, call func(context.Context, string, string) error) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := call(ctx, email, password); err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Logout clears the stored credential and cached data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Logged out")
	return nil
}
