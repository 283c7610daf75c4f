package shipment

import "time"

type ShipmentDB struct {
	Resi                  string
	LockerID              string
	CustomerID            string
	CourierID             int64
	CourierName           string
	CourierPlate          string
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeliveredToLockerAt   *time.Time
	DeliveredToCustomerAt *time.Time
	PickedUpAt            *time.Time
}

type ShipmentLogDB struct {
	ID        int64
	Resi      *string
	LockerID  string
	Event     string
	Extra     map[string]interface{}
	CreatedAt time.Time
}
