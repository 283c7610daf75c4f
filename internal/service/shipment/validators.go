package shipment

import (
	"strings"

	"locker-service/internal/entities"
)

func isValidResi(resi string) bool {
	return strings.TrimSpace(resi) != ""
}

func isValidEvent(event entities.ShipmentEvent) bool {
	return strings.TrimSpace(event.String()) != ""
}

func validateAssignment(a entities.ShipmentAssignment) error {
	if !isValidResi(a.Resi) {
		return ErrInvalidResi
	}
	if strings.TrimSpace(a.LockerID) == "" {
		return ErrInvalidLockerID
	}
	if strings.TrimSpace(a.CustomerID) == "" {
		return ErrInvalidCustomerID
	}
	if a.CourierID <= 0 {
		return ErrInvalidCourierID
	}
	return nil
}
