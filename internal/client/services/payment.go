package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meetavet/meetavet/internal/client/api"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

// isCredentialErr reports whether err is a locally detected credential
// failure, meaning the session is gone and retries are pointless.
func isCredentialErr(err error) bool {
	return errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired)
}

// PaymentService initiates M-Pesa STK pushes for appointments and polls for
// the outcome.
type PaymentService interface {
	// Initiate validates the request locally (an invalid phone number never
	// reaches the network) and returns the checkout request id.
	Initiate(ctx context.Context, req models.PaymentRequest) (string, error)

	// AwaitResult polls the payment status at the given interval until the
	// payment reaches a terminal state or ctx is done.
	AwaitResult(ctx context.Context, checkoutID string, interval time.Duration) (*models.PaymentStatus, error)
}

type paymentService struct {
	client   api.Client
	validate *validator.Validate
	log      logging.Logger
}

func NewPaymentService(client api.Client, log logging.Logger) PaymentService {
	return &paymentService{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

func (s *paymentService) Initiate(ctx context.Context, req models.PaymentRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: please enter a valid M-Pesa number (e.g. 254712345678)", common.ErrValidation)
	}

	checkoutID, err := s.client.InitiatePayment(ctx, req)
	if err != nil {
		return "", err
	}
	if checkoutID == "" {
		return "", fmt.Errorf("%w: no checkout request id in response", api.ErrServer)
	}

	s.log.Info(ctx, "payment initiated", "checkout_id", checkoutID, "appointment_id", req.AppointmentID)
	return checkoutID, nil
}

func (s *paymentService) AwaitResult(ctx context.Context, checkoutID string, interval time.Duration) (*models.PaymentStatus, error) {
	if interval <= 0 {
		interval = 3 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			status, err := s.client.PaymentStatus(ctx, checkoutID)
			if err != nil {
				// Transient polling errors are logged and retried; the
				// surrounding context bounds the total wait.
				s.log.Warn(ctx, "payment status poll failed", "checkout_id", checkoutID, "error", err)
				continue
			}
			if status.Final() {
				s.log.Info(ctx, "payment finished", "checkout_id", checkoutID, "status", status.Status)
				return status, nil
			}

		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
