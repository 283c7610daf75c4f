package entities

import (
	"strings"
	"time"
	"unicode"
)

type CourierState string

const (
	CourierActive   CourierState = "active"
	CourierOngoing  CourierState = "ongoing"
	CourierInactive CourierState = "inactive"
)

const DefaultCourierState = CourierActive

func (s CourierState) String() string {
	return string(s)
}

type Courier struct {
	ID             int64
	Name           string
	Plate          string
	State          CourierState
	ManualInactive bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CourierModify struct {
	ID             *int64
	Name           *string
	Plate          *string
	State          *CourierState
	ManualInactive *bool
}

// NormalizePlate upper-cases a vehicle plate and drops all whitespace,
// so "b 1234 xy" and "B1234XY" name the same courier.
func NormalizePlate(plate string) string {
	var b strings.Builder
	b.Grow(len(plate))
	for _, r := range plate {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
