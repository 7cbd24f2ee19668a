package runner

import "errors"

var (
	// Returned when the runner is asked to do anything, that would race with an active search
	ErrComputing = errors.New("computation in progress")
	// Returned by Perform, when the action isn't in the current position's legal actions
	ErrIllegalAction = errors.New("illegal action")
)
