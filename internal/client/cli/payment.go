package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/meetavet/meetavet/internal/client/models"
)

// Pay initiates an M-Pesa STK push for an appointment and waits for the
// payment to reach a terminal state. The wait is bounded by the configured
// request timeout multiplied over the poll interval via the parent context.
func (a *App) Pay(ctx context.Context) error {
	apptID, err := GetSimpleText(a.reader, "Appointment id", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "M-Pesa phone number (2547XXXXXXXX)", os.Stdout)
	if err != nil {
		return err
	}
	amountStr, err := GetSimpleText(a.reader, "Amount (KES)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		printlnFn("Invalid amount")
		return err
	}

	checkoutID, err := a.paymentService.Initiate(ctx, models.PaymentRequest{
		Phone:         phone,
		Amount:        amount,
		AppointmentID: apptID,
	})
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	printlnFn("STK push sent. Check your phone and enter your M-Pesa PIN...")

	waitCtx, cancel := context.WithTimeout(ctx, a.config.PaymentWaitTimeout)
	defer cancel()

	status, err := a.paymentService.AwaitResult(waitCtx, checkoutID, a.config.PaymentPollInterval)
	if err != nil {
		printlnFn("Payment still pending; check status later with the transaction history.")
		a.log.Debug(ctx, "payment wait ended", "error", err)
		return err
	}

	switch status.Status {
	case models.PaymentCompleted:
		printlnFn("Payment completed, thank you!")
	case models.PaymentFailed:
		printlnFn("Payment failed:", status.Message)
	default:
		printlnFn("Payment status:", status.Status)
	}
	return nil
}
