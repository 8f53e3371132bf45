package settlement

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(s *SettlementDB, items []LineItemDB) *entities.Settlement {
	if s == nil {
		return nil
	}

	settlement := &entities.Settlement{
		ID:          s.ID,
		Number:      s.Number,
		DriverID:    s.DriverID,
		PeriodStart: dateUTC(s.PeriodStart),
		PeriodEnd:   dateUTC(s.PeriodEnd),
		GrossPay:    s.GrossPay,
		Deductions:  s.Deductions,
		NetPay:      s.NetPay,
		TotalMiles:  s.TotalMiles,
		LoadCount:   s.LoadCount,
		Status:      entities.SettlementStatus(s.Status),
		RequestedBy: s.RequestedBy,
		ApprovedAt:  utcPtr(s.ApprovedAt),
		PaidAt:      utcPtr(s.PaidAt),
		CreatedAt:   s.CreatedAt.UTC(),
		LineItems:   make([]entities.SettlementLineItem, 0, len(items)),
	}
	for _, item := range items {
		settlement.LineItems = append(settlement.LineItems, entities.SettlementLineItem{
			ID:           item.ID,
			SettlementID: item.SettlementID,
			Sequence:     item.Sequence,
			Type:         entities.SettlementLineType(item.Type),
			LoadID:       item.LoadID,
			DeductionID:  item.DeductionID,
			Description:  item.Description,
			Miles:        item.Miles,
			Amount:       item.Amount,
		})
	}
	return settlement
}

func FromDomainModify(m *entities.SettlementModify) map[string]any {
	set := map[string]any{}

	if m.Status != nil {
		set["status"] = string(*m.Status)
	}
	if m.ApprovedAt != nil {
		set["approved_at"] = *m.ApprovedAt
	}
	if m.PaidAt != nil {
		set["paid_at"] = *m.PaidAt
	}
	return set
}

// dateUTC keeps the calendar day of a DATE column regardless of the session zone.
func dateUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
