package betting

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid_request")
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrRaceNotFound        = errors.New("race_not_found")
	ErrHorseNotFound       = errors.New("horse_not_found")
)
