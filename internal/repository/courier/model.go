package courier

import "time"

type CourierDB struct {
	ID             int64
	Name           string
	Plate          string
	State          string
	ManualInactive bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CourierModifyDB struct {
	ID             *int64
	Name           *string
	Plate          *string
	State          *string
	ManualInactive *bool
}
