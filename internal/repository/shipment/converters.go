package shipment

import (
	"locker-service/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		Resi:                  s.Resi,
		LockerID:              s.LockerID,
		CustomerID:            s.CustomerID,
		CourierID:             s.CourierID,
		CourierName:           s.CourierName,
		CourierPlate:          s.CourierPlate,
		Status:                entities.ShipmentStatus(s.Status),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
		DeliveredToLockerAt:   s.DeliveredToLockerAt,
		DeliveredToCustomerAt: s.DeliveredToCustomerAt,
		PickedUpAt:            s.PickedUpAt,
	}
}

func FromDomain(s *entities.Shipment) *ShipmentDB {
	if s == nil {
		return nil
	}

	return &ShipmentDB{
		Resi:                  s.Resi,
		LockerID:              s.LockerID,
		CustomerID:            s.CustomerID,
		CourierID:             s.CourierID,
		CourierName:           s.CourierName,
		CourierPlate:          s.CourierPlate,
		Status:                s.Status.String(),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
		DeliveredToLockerAt:   s.DeliveredToLockerAt,
		DeliveredToCustomerAt: s.DeliveredToCustomerAt,
		PickedUpAt:            s.PickedUpAt,
	}
}

func LogFromDomain(l *entities.ShipmentLog) *ShipmentLogDB {
	if l == nil {
		return nil
	}

	logDB := &ShipmentLogDB{
		LockerID:  l.LockerID,
		Event:     l.Event.String(),
		Extra:     l.Extra,
		CreatedAt: l.CreatedAt,
	}
	if l.Resi != "" {
		resi := l.Resi
		logDB.Resi = &resi
	}
	if logDB.Extra == nil {
		logDB.Extra = map[string]interface{}{}
	}
	return logDB
}

func LogToDomainList(logsDB []ShipmentLogDB) []entities.ShipmentLog {
	if len(logsDB) == 0 {
		return []entities.ShipmentLog{}
	}

	result := make([]entities.ShipmentLog, len(logsDB))
	for i, l := range logsDB {
		result[i] = entities.ShipmentLog{
			ID:        l.ID,
			LockerID:  l.LockerID,
			Event:     entities.ShipmentEvent(l.Event),
			Extra:     l.Extra,
			CreatedAt: l.CreatedAt,
		}
		if l.Resi != nil {
			result[i].Resi = *l.Resi
		}
	}
	return result
}

// stampColumn names the timestamp set when a shipment enters status.
func stampColumn(status entities.ShipmentStatus) string {
	switch status {
	case entities.ShipmentDeliveredToLocker:
		return "delivered_to_locker_at"
	case entities.ShipmentDeliveredToCustomer:
		return "delivered_to_customer_at"
	case entities.ShipmentCompleted:
		return "picked_up_at"
	default:
		return ""
	}
}
