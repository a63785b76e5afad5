package cli

import (
	"context"
	"errors"
	"fmt"

	"cvterm/internal/api"
	"cvterm/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects the sign-up form, validates it locally and creates the
// account. On success the user is taken to the login screen, matching the
// register-then-login flow of the platform.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if verr := req.Validate(); verr != nil {
		a.printValidation(verr)
		return verr
	}

	if err := a.api.Register(ctx, req); err != nil {
		a.reportError(ctx, "register", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. Please log in.")
	return a.Login(ctx)
}

// Login collects credentials, authenticates against the service and
// populates the session with the returned identity and token.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := models.Credentials{Email: email, Password: password}
	if verr := creds.Validate(); verr != nil {
		a.printValidation(verr)
		return verr
	}

	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return err
		}
		a.reportError(ctx, "login", err)
		return err
	}

	if err := a.session.Login(ctx, resp.User, resp.Token); err != nil {
		a.reportError(ctx, "login", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", resp.User.Name)
	return nil
}

// Logout clears the session and returns to the public landing screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.reportError(ctx, "logout", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return a.Home(ctx)
}

func (a *App) printValidation(err error) {
	var errs models.ValidationErrors
	if errors.As(err, &errs) {
		for _, msg := range errs {
			fmt.Fprintln(a.out, " -", msg)
		}
		return
	}
	fmt.Fprintln(a.out, err)
}
