package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/meetavet/meetavet/internal/client/models"
)

// Admin dispatches the admin subcommands:
//
//	admin               — dashboard overview (stats, users, transactions)
//	admin update <id>   — edit a user account
//	admin delete <id>   — remove a user account
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.adminOverview(ctx)
	}

	switch args[0] {
	case "update":
		if len(args) < 2 {
			printlnFn("Usage: admin update <user-id>")
			return nil
		}
		return a.adminUpdateUser(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			printlnFn("Usage: admin delete <user-id>")
			return nil
		}
		return a.adminDeleteUser(ctx, args[1])
	default:
		printlnFn("Unknown admin subcommand:", args[0])
		return nil
	}
}

func (a *App) adminOverview(ctx context.Context) error {
	ov, err := a.adminService.Overview(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	if ov.Stats != nil {
		s := ov.Stats
		printlnFn("Dashboard")
		printlnFn("  Farmers:      ", s.TotalFarmers)
		printlnFn("  Vets:         ", s.TotalVets)
		printlnFn("  Transactions: ", s.TotalTransactions)
		printlnFn(fmt.Sprintf("  Success rate:  %.0f%%", s.SuccessRate()*100))
	}

	printUsers("Farmers", ov.Farmers)
	printUsers("Vets", ov.Vets)

	if len(ov.Transactions) > 0 {
		printlnFn(fmt.Sprintf("Transactions (%d)", len(ov.Transactions)))
		for _, t := range ov.Transactions {
			printlnFn(fmt.Sprintf("  %s  %.2f KES  %s  %s", t.ID, t.Amount, t.Status, t.CreatedAt))
		}
	}

	if ov.Err != nil {
		printlnFn("Some sections failed to load:", ov.Err.Error())
	}
	return nil
}

func printUsers(title string, users []models.User) {
	if len(users) == 0 {
		return
	}
	printlnFn(fmt.Sprintf("%s (%d)", title, len(users)))
	for _, u := range users {
		state := "active"
		if !u.Active {
			state = "inactive"
		}
		printlnFn(fmt.Sprintf("  %s  %s <%s>  %s", u.ID, u.Name, u.Email, state))
	}
}

func (a *App) adminUpdateUser(ctx context.Context, id string) error {
	name, err := GetSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	activeStr, err := GetSimpleText(a.reader, "Active? (yes/no, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	upd := models.UserUpdate{Name: name, Email: email}
	switch strings.ToLower(activeStr) {
	case "yes", "y":
		t := true
		upd.Active = &t
	case "no", "n":
		f := false
		upd.Active = &f
	}

	if err := a.adminService.UpdateUser(ctx, id, upd); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("User updated")
	return nil
}

func (a *App) adminDeleteUser(ctx context.Context, id string) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %s? Type 'yes' to confirm", id), os.Stdout)
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.adminService.DeleteUser(ctx, id); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("User deleted")
	return nil
}
