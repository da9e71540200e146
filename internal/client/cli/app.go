package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/meetavet/meetavet/internal/client/api"
	"github.com/meetavet/meetavet/internal/client/config"
	"github.com/meetavet/meetavet/internal/client/credential"
	"github.com/meetavet/meetavet/internal/client/services"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the terminal front end.
type App struct {
	config             *config.Config
	authService        services.AuthService
	profileService     services.ProfileService
	appointmentService services.AppointmentService
	adminService       services.AdminService
	paymentService     services.PaymentService
	log                logging.Logger
	reader             *bufio.Reader
	db                 *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewZerologLogger(os.Stderr, c.LogLevel, c.LogPretty)

	store, db, err := credential.OpenStore(ctx, c.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout, store, log)
	cache := services.NewProfileCache()

	return &App{
		config:             c,
		authService:        services.NewAuthService(apiClient, store, cache, log),
		profileService:     services.NewProfileService(apiClient, cache, log),
		appointmentService: services.NewAppointmentService(apiClient, cache, nil, log),
		adminService:       services.NewAdminService(apiClient, log),
		paymentService:     services.NewPaymentService(apiClient, log),
		log:                log,
		reader:             bufio.NewReader(os.Stdin),
		db:                 db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.authService.Close(ctx)
		_ = a.db.Close()
	}()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedIn(context.Background())
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "logged out"
	}
	if role := a.authService.Role(context.Background()); role != "" {
		return role
	}
	return "logged in"
}

// reportErr prints a command failure in user terms. A locally detected
// credential problem means the session is gone: the message tells the user
// to log in again instead of retrying the call.
func (a *App) reportErr(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken):
		printlnFn("Session ended:", err.Error())
		printlnFn("Please log in again.")
	case errors.Is(err, common.ErrValidation):
		printlnFn("Invalid input:", err.Error())
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	default:
		printlnFn(fmt.Sprintf("Error: %v", err))
	}
	a.log.Debug(ctx, "command failed", "error", err)
}
