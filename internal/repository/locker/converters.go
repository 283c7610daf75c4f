package locker

import (
	"locker-service/internal/entities"
)

func ToDomain(l *LockerDB) *entities.Locker {
	if l == nil {
		return nil
	}

	return &entities.Locker{
		ID:             l.ID,
		Token:          l.Token,
		TokenUpdatedAt: l.TokenUpdatedAt,
		Active:         l.Active,
		LastHeartbeat:  l.LastHeartbeat,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func ToDomainList(lockersDB []LockerDB) []entities.Locker {
	if len(lockersDB) == 0 {
		return []entities.Locker{}
	}

	result := make([]entities.Locker, len(lockersDB))
	for i := range lockersDB {
		result[i] = *ToDomain(&lockersDB[i])
	}
	return result
}

func PoolEntryToDomain(e *PoolEntryDB) *entities.PoolEntry {
	if e == nil {
		return nil
	}

	return &entities.PoolEntry{
		ID:         e.ID,
		LockerID:   e.LockerID,
		Resi:       e.Resi,
		CustomerID: e.CustomerID,
		Token:      e.Token,
		Status:     entities.PoolEntryStatus(e.Status),
		CreatedAt:  e.CreatedAt,
		UsedAt:     e.UsedAt,
	}
}

func CommandToDomain(c *CommandDB) *entities.Command {
	if c == nil {
		return nil
	}

	return &entities.Command{
		ID:        c.ID,
		LockerID:  c.LockerID,
		Type:      entities.CommandType(c.Type),
		Resi:      c.Resi,
		Source:    entities.CommandSource(c.Source),
		Recipient: c.Recipient,
		CreatedAt: c.CreatedAt,
	}
}

func CommandFromDomain(c *entities.Command) *CommandDB {
	if c == nil {
		return nil
	}

	return &CommandDB{
		LockerID:  c.LockerID,
		ID:        c.ID,
		Type:      c.Type.String(),
		Resi:      c.Resi,
		Source:    c.Source.String(),
		Recipient: c.Recipient,
		CreatedAt: c.CreatedAt,
	}
}

func HistoryToDomainList(historyDB []HistoryDB) []entities.HistoryRecord {
	if len(historyDB) == 0 {
		return []entities.HistoryRecord{}
	}

	result := make([]entities.HistoryRecord, len(historyDB))
	for i, h := range historyDB {
		result[i] = entities.HistoryRecord{
			ID:           h.ID,
			LockerID:     h.LockerID,
			CourierID:    h.CourierID,
			CourierName:  h.CourierName,
			CourierPlate: h.CourierPlate,
			Resi:         h.Resi,
			DeliveredAt:  h.DeliveredAt,
			TokenUsed:    h.TokenUsed,
		}
	}
	return result
}
