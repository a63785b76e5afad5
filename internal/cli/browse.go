package cli

import (
	"context"
	"fmt"
)

// Browse lists the publicly visible CVs, optionally filtered by a
// case-insensitive substring over name and description. The filtering
// happens client-side; the endpoint has no query parameters.
func (a *App) Browse(ctx context.Context, term string) error {
	cvs, err := a.api.ListVisibleCVs(ctx)
	if err != nil {
		a.reportError(ctx, "browse", err)
		return err
	}

	shown := 0
	for _, cv := range cvs {
		if !cv.Matches(term) {
			continue
		}
		shown++
		fmt.Fprintf(a.out, "%s  %s\n", cv.ID, cv.DisplayName())
		if cv.PersonalInfo.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", cv.PersonalInfo.Description)
		}
	}

	if shown == 0 {
		if term != "" {
			fmt.Fprintf(a.out, "No CVs match %q.\n", term)
		} else {
			fmt.Fprintln(a.out, "No visible CVs yet.")
		}
		return nil
	}
	fmt.Fprintln(a.out, "Use 'view <id>' to open a CV.")
	return nil
}
