package cli

import (
	"fmt"
	"io"

	"cvterm/internal/models"
)

func renderCV(w io.Writer, cv *models.CV) {
	fmt.Fprintf(w, "%s\n", cv.DisplayName())
	if cv.PersonalInfo.Description != "" {
		fmt.Fprintf(w, "%s\n", cv.PersonalInfo.Description)
	}

	if len(cv.Education) > 0 {
		fmt.Fprintln(w, "\nEducation:")
		for _, e := range cv.Education {
			fmt.Fprintf(w, "  %d  %s, %s\n", e.Year, e.Degree, e.Institution)
		}
	}

	if len(cv.Experience) > 0 {
		fmt.Fprintln(w, "\nExperience:")
		for _, e := range cv.Experience {
			fmt.Fprintf(w, "  %s at %s (%d years)\n", e.JobTitle, e.Company, e.Years)
		}
	}

	if cv.IsVisible {
		fmt.Fprintln(w, "\nVisibility: public")
	} else {
		fmt.Fprintln(w, "\nVisibility: private")
	}
}

func renderComments(w io.Writer, comments []models.Comment, userID, cvOwnerID string) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet.")
		return
	}
	for _, c := range comments {
		author := c.AuthorName
		if author == "" {
			author = c.AuthorID
		}
		fmt.Fprintf(w, "[%s] %s: %s", c.ID, author, c.Text)
		if c.EditableBy(userID, cvOwnerID) {
			fmt.Fprint(w, "  (yours to edit/delete)")
		}
		fmt.Fprintln(w)
	}
}
