package invoice

import (
	"slices"
	"time"

	"dispatch/internal/entities"
)

var transitions = map[entities.InvoiceStatus][]entities.InvoiceStatus{
	entities.InvoiceDraft:   {entities.InvoiceSent, entities.InvoiceVoid},
	entities.InvoiceSent:    {entities.InvoicePaid, entities.InvoiceOverdue, entities.InvoiceVoid},
	entities.InvoiceOverdue: {entities.InvoicePaid, entities.InvoiceVoid},
}

func canTransition(from, to entities.InvoiceStatus) bool {
	return slices.Contains(transitions[from], to)
}

func acceptsPayments(status entities.InvoiceStatus) bool {
	return status == entities.InvoiceSent || status == entities.InvoiceOverdue
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// uniqueIDs drops duplicates and keeps the first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
