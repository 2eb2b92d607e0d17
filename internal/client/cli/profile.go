package cli

import (
	"context"
	"os"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
)

// UpdateProfile prompts for the editable profile fields and submits only the
// ones the user filled in, so the server sees a partial update.
func (a *App) UpdateProfile(ctx context.Context) error {
	fields := map[string]any{}

	for _, f := range []struct {
		key    string
		prompt string
	}{
		{"first", "First name (empty to keep)"},
		{"last", "Last name (empty to keep)"},
		{"avatar", "Avatar URL (empty to keep)"},
	} {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			fields[f.key] = v
		}
	}

	if len(fields) == 0 {
		printlnFn("Nothing to update")
		return nil
	}

	if err := a.manager.UpdateProfile(ctx, fields); err != nil {
		return err
	}
	printlnFn("Profile updated")
	return nil
}

// UpdateAddress prompts for a full postal address and submits it.
func (a *App) UpdateAddress(ctx context.Context) error {
	var addr models.Address

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Street", &addr.Street},
		{"City", &addr.City},
		{"State", &addr.State},
		{"Zip", &addr.Zip},
		{"Country", &addr.Country},
	} {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := a.manager.UpdateAddress(ctx, addr); err != nil {
		return err
	}
	printlnFn("Address updated")
	return nil
}
