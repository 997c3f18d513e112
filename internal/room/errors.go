package room

import "errors"

var (
	ErrNonPositiveDimension = errors.New("room dimensions must all be positive")
	ErrInvalidInsulation    = errors.New("exactly one of r_value and heat_loss_parameter must be positive")
	ErrNonPositiveHorizon   = errors.New("horizon must be a positive number of seconds")
	ErrDriveLength          = errors.New("driving series length must equal the horizon")
	ErrNumericInstability   = errors.New("room temperature is no longer finite")
)
