package cli

import (
	"context"
	"fmt"

	"cvterm/internal/models"
)

// promptCVDraft collects a complete CV form: personal info, any number of
// education and experience rows, and the visibility flag. Creation and
// edit share it, since updates replace the document as a whole.
func (a *App) promptCVDraft(ctx context.Context) (models.CVDraft, error) {
	var zero models.CVDraft

	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return zero, err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return zero, err
	}
	description, err := getSimpleText(a.reader, "Short description", a.out)
	if err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	draft := models.CVDraft{
		PersonalInfo: models.PersonalInfo{
			FirstName:   firstName,
			LastName:    lastName,
			Description: description,
		},
	}

	for {
		more, err := GetConfirmation(a.reader, "Add an education entry?", a.out)
		if err != nil {
			return zero, err
		}
		if !more {
			break
		}
		degree, err := getSimpleText(a.reader, "Degree", a.out)
		if err != nil {
			return zero, err
		}
		institution, err := getSimpleText(a.reader, "Institution", a.out)
		if err != nil {
			return zero, err
		}
		year, err := GetInt(a.reader, "Year", a.out)
		if err != nil {
			return zero, err
		}
		draft.Education = append(draft.Education, models.Education{
			Degree:      degree,
			Institution: institution,
			Year:        year,
		})
	}

	for {
		more, err := GetConfirmation(a.reader, "Add an experience entry?", a.out)
		if err != nil {
			return zero, err
		}
		if !more {
			break
		}
		jobTitle, err := getSimpleText(a.reader, "Job title", a.out)
		if err != nil {
			return zero, err
		}
		company, err := getSimpleText(a.reader, "Company", a.out)
		if err != nil {
			return zero, err
		}
		years, err := GetInt(a.reader, "Years in the role", a.out)
		if err != nil {
			return zero, err
		}
		draft.Experience = append(draft.Experience, models.Experience{
			JobTitle: jobTitle,
			Company:  company,
			Years:    years,
		})
	}

	visible, err := GetConfirmation(a.reader, "Make the CV publicly visible?", a.out)
	if err != nil {
		return zero, err
	}
	draft.IsVisible = visible

	return draft, nil
}

// CreateCV is the protected CV creation screen.
func (a *App) CreateCV(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	draft, err := a.promptCVDraft(ctx)
	if err != nil {
		return err
	}
	draft.UserID = a.session.Snapshot().User.ID

	if verr := draft.Validate(); verr != nil {
		a.printValidation(verr)
		return verr
	}

	if _, err := a.api.CreateCV(ctx, draft); err != nil {
		a.reportError(ctx, "create-cv", err)
		return err
	}

	fmt.Fprintln(a.out, "Your CV has been saved. Use 'mycv' to manage it.")
	return nil
}
