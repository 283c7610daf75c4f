package deposit

import "errors"

var (
	ErrInvalidLockerID = errors.New("invalid locker id")
	ErrInvalidResi     = errors.New("invalid resi")
)
