package courier

import (
	"locker-service/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:             c.ID,
		Name:           c.Name,
		Plate:          c.Plate,
		State:          entities.CourierState(c.State),
		ManualInactive: c.ManualInactive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:             courierModify.ID,
		Name:           courierModify.Name,
		ManualInactive: courierModify.ManualInactive,
	}

	if courierModify.Plate != nil {
		plate := entities.NormalizePlate(*courierModify.Plate)
		courierDB.Plate = &plate
	}
	if courierModify.State != nil {
		state := courierModify.State.String()
		courierDB.State = &state
	}

	return courierDB
}
