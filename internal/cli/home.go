package cli

import (
	"context"
	"fmt"
)

// Home prints the public landing screen.
func (a *App) Home(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the CV platform.")
	fmt.Fprintln(a.out, "Create an account ('register'), sign in ('login'),")
	fmt.Fprintln(a.out, "browse public CVs ('browse') or manage your own ('mycv').")
	return nil
}
