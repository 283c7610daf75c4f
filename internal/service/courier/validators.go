package courier

import (
	"strings"
	"unicode"

	"locker-service/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPlate expects an already normalized plate.
func isValidPlate(plate string) bool {
	if plate == "" {
		return false
	}

	for _, char := range plate {
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '-' {
			return false
		}
	}
	return true
}

// isValidManualState lists the states an operator may set directly.
func isValidManualState(state entities.CourierState) bool {
	switch state {
	case entities.CourierActive, entities.CourierInactive:
		return true
	default:
		return false
	}
}

func isValidCourierID(id int64) bool {
	return id > 0
}
