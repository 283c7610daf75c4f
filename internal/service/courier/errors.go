package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPlate          = errors.New("invalid plate")
	ErrInvalidStateValue     = errors.New("invalid courier state")
)
