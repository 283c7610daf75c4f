package locker

import "errors"

var (
	ErrInvalidLockerID = errors.New("invalid locker id")
	ErrInvalidCommand  = errors.New("invalid command")
)
