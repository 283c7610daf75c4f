package entities

import "time"

type Locker struct {
	ID             string
	Token          string
	TokenUpdatedAt time.Time
	Active         bool
	LastHeartbeat  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LockerView is a locker as shown to agents: no secret, derived liveness.
type LockerView struct {
	ID            string
	Active        bool
	LastHeartbeat *time.Time
	Status        LivenessStatus
	PendingCount  int64
	HasCommand    bool
}

type PoolEntryStatus string

const (
	PoolEntryPending PoolEntryStatus = "pending"
	PoolEntryUsed    PoolEntryStatus = "used"
)

func (s PoolEntryStatus) String() string {
	return string(s)
}

type PoolEntry struct {
	ID         int64
	LockerID   string
	Resi       string
	CustomerID string
	Token      string
	Status     PoolEntryStatus
	CreatedAt  time.Time
	UsedAt     *time.Time
}

type CommandType string

const (
	CommandOpen CommandType = "open"
)

func (t CommandType) String() string {
	return string(t)
}

type CommandSource string

const (
	CommandSourceCourier  CommandSource = "courier"
	CommandSourceCustomer CommandSource = "customer"
)

func (s CommandSource) String() string {
	return string(s)
}

// Command is the single pending instruction for a locker controller.
type Command struct {
	ID        string
	LockerID  string
	Type      CommandType
	Resi      string
	Source    CommandSource
	Recipient *string
	CreatedAt time.Time
}

type HistoryRecord struct {
	ID           int64
	LockerID     string
	CourierID    int64
	CourierName  string
	CourierPlate string
	Resi         string
	DeliveredAt  time.Time
	TokenUsed    string
}

type LivenessStatus string

const (
	LivenessOnline  LivenessStatus = "online"
	LivenessOffline LivenessStatus = "offline"
	LivenessUnknown LivenessStatus = "unknown"
)

func (s LivenessStatus) String() string {
	return string(s)
}

// Heartbeat is what a controller learns about itself after contact.
type Heartbeat struct {
	LockerID      string
	Status        LivenessStatus
	LastHeartbeat time.Time
}

type DepositRequest struct {
	LockerID      string
	Token         string
	Resi          string
	ShipmentToken *string
}

type DepositResult struct {
	LockerID     string
	Resi         string
	CourierID    int64
	CourierName  string
	CourierPlate string
	DeliveredAt  time.Time
	Command      Command
}
