package invoice

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(i *InvoiceDB, items []LineItemDB) *entities.Invoice {
	if i == nil {
		return nil
	}

	invoice := &entities.Invoice{
		ID:                 i.ID,
		Number:             i.Number,
		CustomerID:         i.CustomerID,
		Status:             entities.InvoiceStatus(i.Status),
		IssueDate:          dateUTC(i.IssueDate),
		DueDate:            dateUTC(i.DueDate),
		Subtotal:           i.Subtotal,
		FuelSurchargeTotal: i.FuelSurchargeTotal,
		AccessorialTotal:   i.AccessorialTotal,
		Total:              i.Total,
		AmountPaid:         i.AmountPaid,
		BalanceDue:         i.BalanceDue,
		Notes:              i.Notes,
		SentAt:             utcPtr(i.SentAt),
		PaidAt:             utcPtr(i.PaidAt),
		VoidedAt:           utcPtr(i.VoidedAt),
		CreatedAt:          i.CreatedAt.UTC(),
		UpdatedAt:          i.UpdatedAt.UTC(),
	}
	if items == nil {
		return invoice
	}

	invoice.LineItems = make([]entities.InvoiceLineItem, 0, len(items))
	for _, item := range items {
		invoice.LineItems = append(invoice.LineItems, entities.InvoiceLineItem{
			ID:          item.ID,
			InvoiceID:   item.InvoiceID,
			Sequence:    item.Sequence,
			LoadID:      item.LoadID,
			Type:        entities.InvoiceLineType(item.Type),
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return invoice
}

func FromDomainModify(m *entities.InvoiceModify) map[string]any {
	set := map[string]any{}

	if m.Status != nil {
		set["status"] = string(*m.Status)
	}
	if m.DueDate != nil {
		set["due_date"] = *m.DueDate
	}
	if m.Notes != nil {
		set["notes"] = *m.Notes
	}
	if m.AmountPaid != nil {
		set["amount_paid"] = *m.AmountPaid
	}
	if m.BalanceDue != nil {
		set["balance_due"] = *m.BalanceDue
	}
	if m.SentAt != nil {
		set["sent_at"] = *m.SentAt
	}
	if m.PaidAt != nil {
		set["paid_at"] = *m.PaidAt
	}
	if m.VoidedAt != nil {
		set["voided_at"] = *m.VoidedAt
	}
	return set
}

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
