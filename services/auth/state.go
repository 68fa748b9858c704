package auth

import "fmt"

// OTPState is a step of the email verification flow.
type OTPState string

const (
	StateIdle                 OTPState = "Idle"
	StateSending              OTPState = "Sending"
	StateAwaitingVerification OTPState = "AwaitingVerification"
	StateVerified             OTPState = "Verified"
	StateFailed               OTPState = "Failed"
)

var allowedTransitions = map[OTPState][]OTPState{
	StateIdle:                 {StateSending},
	StateSending:              {StateAwaitingVerification, StateFailed},
	StateAwaitingVerification: {StateSending, StateVerified, StateFailed},
	StateFailed:               {StateSending},
	StateVerified:             {StateSending},
}

// CanTransition reports whether the flow may move from -> to.
func CanTransition(from, to OTPState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (e *OTPEntry) transition(to OTPState) error {
	from := e.State
	if from == "" {
		from = StateIdle
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	e.State = to
	return nil
}
