package cli

import "cvterm/internal/session"

// Decision is the route guard's verdict for a protected screen.
type Decision int

const (
	// DecisionWait: the session is still restoring; show a placeholder and
	// make no call either way. Avoids a flash redirect before restore
	// completes.
	DecisionWait Decision = iota

	// DecisionRedirect: nobody is logged in; send the visitor to login.
	DecisionRedirect

	// DecisionAllow: render the protected screen unchanged.
	DecisionAllow
)

// Decide gates a protected screen on the given session snapshot. It is a
// pure function of the snapshot and holds no state of its own.
func Decide(s session.Session) Decision {
	if s.Loading {
		return DecisionWait
	}
	if s.User == nil {
		return DecisionRedirect
	}
	return DecisionAllow
}
