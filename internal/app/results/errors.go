package results

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrNoUnresultedHorses = errors.New("no_unresulted_horses")
)
