package locker

import "time"

type LockerDB struct {
	ID             string
	Token          string
	TokenUpdatedAt time.Time
	Active         bool
	LastHeartbeat  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PoolEntryDB struct {
	ID         int64
	LockerID   string
	Resi       string
	CustomerID string
	Token      string
	Status     string
	CreatedAt  time.Time
	UsedAt     *time.Time
}

type CommandDB struct {
	LockerID  string
	ID        string
	Type      string
	Resi      string
	Source    string
	Recipient *string
	CreatedAt time.Time
}

type HistoryDB struct {
	ID           int64
	LockerID     string
	CourierID    int64
	CourierName  string
	CourierPlate string
	Resi         string
	DeliveredAt  time.Time
	TokenUsed    string
}
