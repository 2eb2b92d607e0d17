package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptRole() (models.Role, error) {
	s, err := getSimpleText(a.reader, "Enter role (ngo/individual/admin)", os.Stdout)
	if err != nil {
		return "", err
	}
	return models.ParseRole(s)
}

// Register prompts for email, password, and role and creates an account.
// A verification code is sent by the server; the user confirms it with the
// verify command.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := a.promptRole()
	if err != nil {
		return err
	}

	if err := a.manager.Register(ctx, email, string(password), role); err != nil {
		return err
	}

	printlnFn("Registered. Check your email for a verification code, then run 'verify'.")
	return nil
}

// Login prompts for credentials and authenticates the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := a.promptRole()
	if err != nil {
		return err
	}

	if err := a.manager.Login(ctx, email, string(password), role); err != nil {
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Verify confirms an emailed verification code. When the server issues a
// credential along with the confirmation, the session is logged in.
func (a *App) Verify(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	loggedIn, err := a.manager.VerifyOTP(ctx, email, code)
	if err != nil {
		return err
	}
	if loggedIn {
		printlnFn("Verified and logged in")
	} else {
		printlnFn("Verified. Run 'login' to sign in.")
	}
	return nil
}

// Resend asks the server for a fresh verification code.
func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.manager.ResendOTP(ctx, email); err != nil {
		return err
	}
	printlnFn("Verification code sent")
	return nil
}

// Logout clears the stored credential and resets the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the cached identity.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.store.State()
	if !st.Authenticated {
		printlnFn("Not logged in")
		return nil
	}
	u := st.User
	printlnFn(fmt.Sprintf("%s %s <%s> role=%s verified=%v", u.First, u.Last, u.Email, u.Role, u.Verified))
	if u.Address != nil {
		printlnFn(fmt.Sprintf("Address: %s, %s, %s %s, %s",
			u.Address.Street, u.Address.City, u.Address.State, u.Address.Zip, u.Address.Country))
	}
	return nil
}
