package cli

import (
	"context"
	"errors"
	"fmt"

	"cvterm/internal/api"
)

// MyCV is the protected "my CV" screen: fetch the caller's CV, then offer
// edit and delete. A 404 is not an error here: it means no CV exists yet
// and the screen points at the creation flow instead.
func (a *App) MyCV(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	user := a.session.Snapshot().User

	fmt.Fprintln(a.out, "Loading your CV...")
	cv, err := a.api.GetCVByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "You have no CV yet. Use 'create' to make one.")
			return nil
		}
		a.reportError(ctx, "my-cv", err)
		return err
	}

	renderCV(a.out, cv)

	for {
		cmd, err := getSimpleText(a.reader, "mycv: edit | delete | back", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "edit":
			if err := a.editMyCV(ctx, cv.ID); err == nil {
				return nil
			}
		case "delete":
			done, err := a.deleteMyCV(ctx, cv.ID)
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

// editMyCV collects a full replacement draft and submits it. Updates carry
// the whole document; the server overwrites the CV with what is sent.
func (a *App) editMyCV(ctx context.Context, cvID string) error {
	fmt.Fprintln(a.out, "Enter the full CV again; the update replaces the existing one.")
	draft, err := a.promptCVDraft(ctx)
	if err != nil {
		return err
	}
	draft.UserID = a.session.Snapshot().User.ID

	if verr := draft.Validate(); verr != nil {
		a.printValidation(verr)
		return verr
	}

	if _, err := a.api.UpdateCV(ctx, cvID, draft); err != nil {
		a.reportError(ctx, "my-cv", err)
		return err
	}
	fmt.Fprintln(a.out, "Your CV has been updated.")
	return nil
}

// deleteMyCV asks for confirmation and deletes the CV. The bool result
// reports whether the CV is gone and the screen should close.
func (a *App) deleteMyCV(ctx context.Context, cvID string) (bool, error) {
	ok, err := GetConfirmation(a.reader, "Delete your CV? This cannot be undone.", a.out)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(a.out, "Kept.")
		return false, nil
	}

	if err := a.api.DeleteCV(ctx, cvID); err != nil {
		a.reportError(ctx, "my-cv", err)
		return false, err
	}
	fmt.Fprintln(a.out, "Your CV has been deleted.")
	return true, a.Home(ctx)
}
