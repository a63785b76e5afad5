package cli

import (
	"context"
	"fmt"

	"cvterm/internal/models"
)

// Profile is the protected account screen: show the current identity,
// update it, or delete the account entirely.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	user := a.session.Snapshot().User

	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\n", user.Name, user.Email)

	for {
		cmd, err := getSimpleText(a.reader, "profile: edit | delete | back", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "edit":
			if err := a.editProfile(ctx); err == nil {
				return nil
			}
		case "delete":
			done, err := a.deleteAccount(ctx)
			if err != nil {
				continue
			}
			if done {
				return nil
			}
		case "back", "":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// editProfile collects the full profile form (the update replaces name,
// email and password as a unit) and feeds the server's echo, the fresh
// identity plus token, back into the session.
func (a *App) editProfile(ctx context.Context) error {
	user := a.session.Snapshot().User

	name, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	req := models.ProfileUpdate{Name: name, Email: email, Password: password}
	if verr := req.Validate(); verr != nil {
		a.printValidation(verr)
		return verr
	}

	resp, err := a.api.UpdateProfile(ctx, user.ID, req)
	if err != nil {
		a.reportError(ctx, "profile", err)
		return err
	}

	if err := a.session.UpdateUser(ctx, resp.User, resp.Token); err != nil {
		a.reportError(ctx, "profile", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// deleteAccount confirms and deletes the account, then performs the logout
// flow. The bool result reports whether the account is gone.
func (a *App) deleteAccount(ctx context.Context) (bool, error) {
	ok, err := GetConfirmation(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(a.out, "Kept.")
		return false, nil
	}

	userID := a.session.Snapshot().User.ID
	if err := a.api.DeleteAccount(ctx, userID); err != nil {
		a.reportError(ctx, "profile", err)
		return false, err
	}

	fmt.Fprintln(a.out, "Your account has been deleted.")
	return true, a.Logout(ctx)
}
