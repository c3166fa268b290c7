package bookie

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")

	// ErrWrongState covers every rejected transition: unknown bet, a bet in
	// another state, or a settlement attempted before the horse's finishing
	// position is known.
	ErrWrongState = errors.New("wrong_state")
)
