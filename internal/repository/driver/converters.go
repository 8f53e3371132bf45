package driver

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Phone:        d.Phone,
		Status:       entities.DriverStatus(d.Status),
		PayModel:     entities.PayModel(d.PayModel),
		PayRate:      d.PayRate,
		TeamDriverID: d.TeamDriverID,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if d.MinPerMile.Valid {
		minPerMile := d.MinPerMile.Decimal
		driver.MinPerMile = &minPerMile
	}
	return driver
}

func DeductionToDomain(d *DeductionDB) entities.Deduction {
	return entities.Deduction{
		ID:          d.ID,
		DriverID:    d.DriverID,
		Description: d.Description,
		Amount:      d.Amount,
		Recurring:   d.Recurring,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func FromDomainModify(m *entities.DriverModify) map[string]any {
	set := map[string]any{}

	if m.Status != nil {
		set["status"] = m.Status.String()
	}
	if m.TeamDriverID != nil {
		set["team_driver_id"] = *m.TeamDriverID
	}
	if m.ClearTeamDriver {
		set["team_driver_id"] = nil
	}
	return set
}
