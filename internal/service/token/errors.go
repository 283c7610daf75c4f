package token

import "errors"

var (
	ErrInvalidLockerID = errors.New("invalid locker id")
	ErrTokenExhausted  = errors.New("could not generate a unique token")
)
