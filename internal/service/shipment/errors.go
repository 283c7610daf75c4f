package shipment

import "errors"

var (
	ErrInvalidResi       = errors.New("invalid resi")
	ErrInvalidLockerID   = errors.New("invalid locker id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidEvent      = errors.New("invalid event")
)
