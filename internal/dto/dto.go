// Package dto holds the JSON shapes of the HTTP and Kafka surfaces.
package dto

import "time"

type Error struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message    *string    `json:"message,omitempty"`
	Service    string     `json:"service"`
	ServerTime *time.Time `json:"server_time,omitempty"`
}

type LockerToken struct {
	LockerID string `json:"locker_id"`
	Token    string `json:"token"`
}

type Heartbeat struct {
	LockerID      string    `json:"locker_id"`
	Status        string    `json:"status"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

type Command struct {
	ID        string    `json:"id"`
	LockerID  string    `json:"locker_id"`
	Type      string    `json:"type"`
	Resi      string    `json:"resi"`
	Source    string    `json:"source"`
	Recipient *string   `json:"recipient,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DepositRequest struct {
	Token         string  `json:"token"`
	Resi          string  `json:"resi"`
	ShipmentToken *string `json:"shipment_token,omitempty"`
}

type Courier struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Plate          string    `json:"plate"`
	State          string    `json:"state"`
	ManualInactive bool      `json:"manual_inactive"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DepositResponse struct {
	LockerID    string    `json:"locker_id"`
	Resi        string    `json:"resi"`
	Courier     Courier   `json:"courier"`
	DeliveredAt time.Time `json:"delivered_at"`
	Command     Command   `json:"command"`
}

type ControllerLogRequest struct {
	Event string                 `json:"event"`
	Resi  *string                `json:"resi,omitempty"`
	Extra map[string]interface{} `json:"extra,omitempty"`
}

type OpenRequest struct {
	CourierType string `json:"courier_type"`
}

type ShipmentLog struct {
	Event     string                 `json:"event"`
	LockerID  string                 `json:"locker_id"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type Shipment struct {
	Resi                  string        `json:"resi"`
	LockerID              string        `json:"locker_id"`
	CustomerID            string        `json:"customer_id"`
	CourierID             int64         `json:"courier_id"`
	CourierName           string        `json:"courier_name,omitempty"`
	CourierPlate          string        `json:"courier_plate,omitempty"`
	Status                string        `json:"status"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	DeliveredToLockerAt   *time.Time    `json:"delivered_to_locker_at,omitempty"`
	DeliveredToCustomerAt *time.Time    `json:"delivered_to_customer_at,omitempty"`
	PickedUpAt            *time.Time    `json:"picked_up_at,omitempty"`
	ShipmentToken         string        `json:"shipment_token,omitempty"`
	Log                   []ShipmentLog `json:"log,omitempty"`
}

// ShipmentAssign is both the POST /shipments/assign body and the
// shipment.assigned Kafka message.
type ShipmentAssign struct {
	Resi       string `json:"resi"`
	LockerID   string `json:"locker_id"`
	CustomerID string `json:"customer_id"`
	CourierID  int64  `json:"courier_id"`
}

type CourierCreate struct {
	Name  string `json:"name"`
	Plate string `json:"plate"`
}

type CourierState struct {
	State string `json:"state"`
}

type LockerActive struct {
	Active *bool `json:"active"`
}

type Locker struct {
	ID            string     `json:"id"`
	Active        bool       `json:"active"`
	Status        string     `json:"status"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	PendingCount  int64      `json:"pending_count"`
	HasCommand    bool       `json:"has_command"`
}

type HistoryRecord struct {
	CourierID    int64     `json:"courier_id"`
	CourierName  string    `json:"courier_name"`
	CourierPlate string    `json:"courier_plate"`
	Resi         string    `json:"resi"`
	DeliveredAt  time.Time `json:"delivered_at"`
}

type LockerHistory struct {
	LockerID string          `json:"locker_id"`
	Records  []HistoryRecord `json:"records"`
}
