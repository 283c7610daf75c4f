package dto

import "locker-service/internal/entities"

func FromCommand(c entities.Command) Command {
	return Command{
		ID:        c.ID,
		LockerID:  c.LockerID,
		Type:      c.Type.String(),
		Resi:      c.Resi,
		Source:    c.Source.String(),
		Recipient: c.Recipient,
		CreatedAt: c.CreatedAt,
	}
}

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:             c.ID,
		Name:           c.Name,
		Plate:          c.Plate,
		State:          c.State.String(),
		ManualInactive: c.ManualInactive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromDepositResult(r *entities.DepositResult) DepositResponse {
	return DepositResponse{
		LockerID: r.LockerID,
		Resi:     r.Resi,
		Courier: Courier{
			ID:    r.CourierID,
			Name:  r.CourierName,
			Plate: r.CourierPlate,
		},
		DeliveredAt: r.DeliveredAt,
		Command:     FromCommand(r.Command),
	}
}

func FromShipment(s *entities.Shipment) Shipment {
	res := Shipment{
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
		ShipmentToken:         s.ShipmentToken,
	}
	for _, l := range s.Log {
		res.Log = append(res.Log, ShipmentLog{
			Event:     l.Event.String(),
			LockerID:  l.LockerID,
			Extra:     l.Extra,
			CreatedAt: l.CreatedAt,
		})
	}
	return res
}

func FromLockerView(v *entities.LockerView) Locker {
	return Locker{
		ID:            v.ID,
		Active:        v.Active,
		Status:        v.Status.String(),
		LastHeartbeat: v.LastHeartbeat,
		PendingCount:  v.PendingCount,
		HasCommand:    v.HasCommand,
	}
}

func FromHistory(lockerID string, records []entities.HistoryRecord) LockerHistory {
	res := LockerHistory{
		LockerID: lockerID,
		Records:  make([]HistoryRecord, 0, len(records)),
	}
	for _, r := range records {
		res.Records = append(res.Records, HistoryRecord{
			CourierID:    r.CourierID,
			CourierName:  r.CourierName,
			CourierPlate: r.CourierPlate,
			Resi:         r.Resi,
			DeliveredAt:  r.DeliveredAt,
		})
	}
	return res
}

func (a ShipmentAssign) ToEntity() entities.ShipmentAssignment {
	return entities.ShipmentAssignment{
		Resi:       a.Resi,
		LockerID:   a.LockerID,
		CustomerID: a.CustomerID,
		CourierID:  a.CourierID,
	}
}
