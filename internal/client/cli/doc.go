// Package cli provides the interactive Meet-A-Vet command-line client.
//
// It wires configuration, the local credential store, the API services, and
// an interactive REPL. Typical flow: log in, look at the appointment
// calendar, book a visit, pay for it via M-Pesa.
//
// Key features:
//   - Register / Login / AdminLogin / Logout
//   - Profile and herd summary views
//   - Appointment calendar with per-day status markers
//   - Booking with optional time of day
//   - M-Pesa STK push payments with status polling
//   - Administrator dashboard and user management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
