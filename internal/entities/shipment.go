package entities

import "time"

type ShipmentStatus string

const (
	ShipmentPendingLocker       ShipmentStatus = "pending_locker"
	ShipmentDeliveredToLocker   ShipmentStatus = "delivered_to_locker"
	ShipmentReadyForPickup      ShipmentStatus = "ready_for_pickup"
	ShipmentDeliveredToCustomer ShipmentStatus = "delivered_to_customer"
	ShipmentCompleted           ShipmentStatus = "completed"
)

// shipmentStatusOrder is the lifecycle order; status never moves backwards in it.
var shipmentStatusOrder = []ShipmentStatus{
	ShipmentPendingLocker,
	ShipmentDeliveredToLocker,
	ShipmentReadyForPickup,
	ShipmentDeliveredToCustomer,
	ShipmentCompleted,
}

// shipmentTransitions lists every allowed move. Anything else is rejected.
var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentPendingLocker:       {ShipmentDeliveredToLocker},
	ShipmentDeliveredToLocker:   {ShipmentReadyForPickup, ShipmentDeliveredToCustomer, ShipmentCompleted},
	ShipmentReadyForPickup:      {ShipmentDeliveredToCustomer, ShipmentCompleted},
	ShipmentDeliveredToCustomer: {ShipmentCompleted},
	ShipmentCompleted:           {},
}

func (s ShipmentStatus) String() string {
	return string(s)
}

// Rank is the position of s in the lifecycle, -1 for unknown values.
func (s ShipmentStatus) Rank() int {
	for i, status := range shipmentStatusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

func (s ShipmentStatus) IsValid() bool {
	return s.Rank() >= 0
}

// IsOpen reports whether the shipment still keeps its courier busy: any
// status ranked before delivered_to_customer. completed is closed as well,
// so "open" is not the same as "status != delivered_to_customer"; a
// completed parcel has already left the locker.
func (s ShipmentStatus) IsOpen() bool {
	return s.IsValid() && s.Rank() < ShipmentDeliveredToCustomer.Rank()
}

func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range shipmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OpenShipmentStatuses are the statuses counted as outstanding work for a courier.
func OpenShipmentStatuses() []ShipmentStatus {
	open := make([]ShipmentStatus, 0, len(shipmentStatusOrder))
	for _, status := range shipmentStatusOrder {
		if status.IsOpen() {
			open = append(open, status)
		}
	}
	return open
}

type ShipmentEvent string

const (
	EventAssigned         ShipmentEvent = "assigned"
	EventDeposited        ShipmentEvent = "deposited"
	EventLockerClosed     ShipmentEvent = "locker_closed"
	EventOpenRequested    ShipmentEvent = "open_requested"
	EventOpenedByCustomer ShipmentEvent = "opened_by_customer"
)

func (e ShipmentEvent) String() string {
	return string(e)
}

type Shipment struct {
	Resi                  string
	LockerID              string
	CustomerID            string
	CourierID             int64
	CourierName           string
	CourierPlate          string
	Status                ShipmentStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeliveredToLockerAt   *time.Time
	DeliveredToCustomerAt *time.Time
	PickedUpAt            *time.Time
	Log                   []ShipmentLog

	// ShipmentToken is the pool entry token, only set on the assignment result.
	ShipmentToken string
}

type ShipmentLog struct {
	ID        int64
	Resi      string
	LockerID  string
	Event     ShipmentEvent
	Extra     map[string]interface{}
	CreatedAt time.Time
}

// ShipmentTransition moves a shipment From -> To and records Event in its log.
type ShipmentTransition struct {
	Resi     string
	LockerID string
	From     ShipmentStatus
	To       ShipmentStatus
	Event    ShipmentEvent
	Extra    map[string]interface{}
	At       time.Time
}

type ShipmentAssignment struct {
	Resi       string
	LockerID   string
	CustomerID string
	CourierID  int64
}

// ControllerLog is an event posted by a locker controller.
type ControllerLog struct {
	LockerID string
	Event    ShipmentEvent
	Resi     *string
	Extra    map[string]interface{}
}

type OpenRequest struct {
	Resi        string
	CustomerID  string
	CourierType string
}
