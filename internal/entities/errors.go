package entities

import (
	"errors"
	"fmt"
)

// Domain error taxonomy shared by services, repositories and handlers.
var (
	ErrLockerNotFound   = errors.New("locker not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrCourierNotFound  = errors.New("courier not found")

	ErrInvalidToken              = errors.New("invalid locker token")
	ErrNoMatchingPendingShipment = errors.New("no matching pending shipment")

	ErrInvalidState = errors.New("invalid state")
	// both are InvalidState for callers that only care about the category
	ErrInvalidTransition = fmt.Errorf("%w: shipment status transition not allowed", ErrInvalidState)
	ErrLockerInactive    = fmt.Errorf("%w: locker is inactive", ErrInvalidState)

	ErrNoCommand = errors.New("no pending command")

	ErrNotOwner = errors.New("shipment belongs to another customer")
	ErrConflict = errors.New("resource already exists")
)
