package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
)

// ListEvents prints the caller's visible volunteer events.
func (a *App) ListEvents(ctx context.Context) error {
	evs, err := a.events.List(ctx)
	if err != nil {
		return err
	}
	if len(evs) == 0 {
		printlnFn("No events")
		return nil
	}
	for _, ev := range evs {
		printlnFn(fmt.Sprintf("%s  %-30s %s %s", ev.ID, ev.Title, ev.Date, ev.Location))
	}
	return nil
}

// NewEvent prompts for the event fields and publishes it.
func (a *App) NewEvent(ctx context.Context) error {
	var ev models.Event

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Title", &ev.Title},
		{"Description", &ev.Description},
		{"Location", &ev.Location},
		{"Date (YYYY-MM-DD)", &ev.Date},
	} {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	capStr, err := getSimpleText(a.reader, "Capacity (empty for unlimited)", os.Stdout)
	if err != nil {
		return err
	}
	if capStr != "" {
		n, err := strconv.Atoi(capStr)
		if err != nil {
			return fmt.Errorf("invalid capacity: %w", err)
		}
		ev.Capacity = n
	}

	created, err := a.events.Create(ctx, ev)
	if err != nil {
		return err
	}
	printlnFn("Created event", created.ID)
	return nil
}

// Registrations prints the registrations for an owned event.
func (a *App) Registrations(ctx context.Context, eventID string) error {
	regs, err := a.events.Registrations(ctx, eventID)
	if err != nil {
		return err
	}
	if len(regs) == 0 {
		printlnFn("No registrations")
		return nil
	}
	for _, r := range regs {
		printlnFn(fmt.Sprintf("%s  %-25s <%s> %s", r.ID, r.Name, r.Email, r.Status))
	}
	return nil
}

// Approve accepts a volunteer registration.
func (a *App) Approve(ctx context.Context, eventID, regID string) error {
	if err := a.events.Approve(ctx, eventID, regID); err != nil {
		return err
	}
	printlnFn("Approved", regID)
	return nil
}

// Reject declines a volunteer registration.
func (a *App) Reject(ctx context.Context, eventID, regID string) error {
	if err := a.events.Reject(ctx, eventID, regID); err != nil {
		return err
	}
	printlnFn("Rejected", regID)
	return nil
}
