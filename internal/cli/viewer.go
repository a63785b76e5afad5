package cli

import (
	"context"
	"errors"
	"fmt"

	"cvterm/internal/api"
	"cvterm/internal/models"
)

// cvView is the per-visit state of the CV detail screen. Comments are
// fetched lazily on the first reveal; after that, toggling only flips
// visibility. Mutations re-fetch the list instead of patching it locally,
// trading a request for guaranteed consistency with the server.
type cvView struct {
	cv              *models.CV
	comments        []models.Comment
	commentsVisible bool
	commentsLoaded  bool
}

// ViewCV is the protected CV detail screen. A 403 on the initial fetch
// forces the visitor to the login screen; any other failure ends the visit
// with an inline message. Once loaded, the visit stays open for comment
// commands until 'back'.
func (a *App) ViewCV(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	fmt.Fprintln(a.out, "Loading CV...")
	cv, err := a.api.GetCV(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "You are not allowed to see this CV.")
			return a.Login(ctx)
		}
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such CV.")
			return err
		}
		a.reportError(ctx, "cv-viewer", err)
		return err
	}

	view := &cvView{cv: cv}
	renderCV(a.out, cv)

	for {
		cmd, err := getSimpleText(a.reader, "view: comments | comment | edit <id> | delete <id> | back", a.out)
		if err != nil {
			return err
		}
		parts := splitCommand(cmd)
		switch parts[0] {
		case "comments":
			a.toggleComments(ctx, view)
		case "comment":
			a.addComment(ctx, view)
		case "edit":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: edit <comment-id>")
				continue
			}
			a.editComment(ctx, view, parts[1])
		case "delete":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: delete <comment-id>")
				continue
			}
			a.deleteComment(ctx, view, parts[1])
		case "back", "":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

// toggleComments flips comment visibility. The list is fetched on the
// first reveal only; subsequent toggles reuse what was loaded.
func (a *App) toggleComments(ctx context.Context, view *cvView) {
	if !view.commentsVisible && !view.commentsLoaded {
		if !a.refreshComments(ctx, view) {
			return
		}
	}
	view.commentsVisible = !view.commentsVisible

	if view.commentsVisible {
		a.renderViewComments(view)
	} else {
		fmt.Fprintln(a.out, "Comments hidden.")
	}
}

// refreshComments re-fetches the comment list from the server. Failures
// are reported inline and leave the previous list in place; the screen
// stays usable and the user can retry.
func (a *App) refreshComments(ctx context.Context, view *cvView) bool {
	comments, err := a.api.ListComments(ctx, view.cv.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load comments: %v\n", err)
		fmt.Fprintln(a.out, "Try 'comments' again.")
		return false
	}
	view.comments = comments
	view.commentsLoaded = true
	return true
}

func (a *App) renderViewComments(view *cvView) {
	userID := ""
	if u := a.session.Snapshot().User; u != nil {
		userID = u.ID
	}
	renderComments(a.out, view.comments, userID, view.cv.OwnerID)
}

func (a *App) addComment(ctx context.Context, view *cvView) {
	text, err := getSimpleText(a.reader, "Your comment", a.out)
	if err != nil {
		return
	}
	req := models.CommentRequest{
		CVID:    view.cv.ID,
		UserID:  a.session.Snapshot().User.ID,
		Comment: text,
	}
	if verr := req.Validate(); verr != nil {
		a.printValidation(verr)
		return
	}
	if err := a.api.AddComment(ctx, req); err != nil {
		fmt.Fprintf(a.out, "Could not add the comment: %v\n", err)
		return
	}
	if a.refreshComments(ctx, view) {
		view.commentsVisible = true
		a.renderViewComments(view)
	}
}

func (a *App) editComment(ctx context.Context, view *cvView, commentID string) {
	text, err := getSimpleText(a.reader, "New comment text", a.out)
	if err != nil {
		return
	}
	if err := a.api.EditComment(ctx, commentID, text); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "You can only edit your own comments.")
			return
		}
		fmt.Fprintf(a.out, "Could not edit the comment: %v\n", err)
		return
	}
	if a.refreshComments(ctx, view) && view.commentsVisible {
		a.renderViewComments(view)
	}
}

func (a *App) deleteComment(ctx context.Context, view *cvView, commentID string) {
	if err := a.api.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "You can only delete your own comments.")
			return
		}
		fmt.Fprintf(a.out, "Could not delete the comment: %v\n", err)
		return
	}
	if a.refreshComments(ctx, view) && view.commentsVisible {
		a.renderViewComments(view)
	}
}
