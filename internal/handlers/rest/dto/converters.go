package dto

import (
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const DateLayout = "2006-01-02"

// ParseDate reads a calendar day in YYYY-MM-DD form as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, entities.ErrValidation)
	}
	return t, nil
}

func FromLoad(l *entities.Load) Load {
	load := Load{
		ID:                    l.ID,
		Reference:             l.Reference,
		Status:                l.Status.String(),
		CustomerID:            l.CustomerID,
		DriverID:              l.DriverID,
		TeamDriverID:          l.TeamDriverID,
		TruckID:               l.TruckID,
		TrailerID:             l.TrailerID,
		CarrierID:             l.CarrierID,
		RateAmount:            l.RateAmount,
		RateType:              string(l.RateType),
		FuelSurchargePercent:  l.FuelSurchargePercent,
		FuelSurchargeAmount:   l.FuelSurchargeAmount,
		TotalAmount:           l.TotalAmount,
		LoadedMiles:           l.LoadedMiles,
		EmptyMiles:            l.EmptyMiles,
		SettlementID:          l.SettlementID,
		InvoiceID:             l.InvoiceID,
		ExcludeFromSettlement: l.ExcludeFromSettlement,
		ImportConfidence:      l.ImportConfidence,
		SourceDocumentURL:     l.SourceDocumentURL,
		AssignedAt:            l.AssignedAt,
		PickedUpAt:            l.PickedUpAt,
		DeliveredAt:           l.DeliveredAt,
		CancellationReason:    l.CancellationReason,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
		Stops:                 make([]Stop, 0, len(l.Stops)),
		Accessorials:          make([]Accessorial, 0, len(l.Accessorials)),
	}
	for _, s := range l.Stops {
		load.Stops = append(load.Stops, Stop{
			ID:               s.ID,
			Sequence:         s.Sequence,
			Type:             string(s.Type),
			Facility:         s.Facility,
			Address:          s.Address,
			AppointmentStart: s.AppointmentStart,
			AppointmentEnd:   s.AppointmentEnd,
		})
	}
	for _, a := range l.Accessorials {
		load.Accessorials = append(load.Accessorials, Accessorial{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			Quantity:    a.Quantity,
			Rate:        a.Rate,
			Total:       a.Total,
			CreatedAt:   a.CreatedAt,
		})
	}
	return load
}

func (c LoadCreate) ToDomain() entities.NewLoad {
	newLoad := entities.NewLoad{
		Reference:            c.Reference,
		CustomerID:           c.CustomerID,
		RateAmount:           c.RateAmount,
		RateType:             entities.RateType(c.RateType),
		FuelSurchargePercent: c.FuelSurchargePercent,
		FuelSurchargeAmount:  c.FuelSurchargeAmount,
		LoadedMiles:          c.LoadedMiles,
		EmptyMiles:           c.EmptyMiles,
		Stops:                make([]entities.Stop, 0, len(c.Stops)),
		Accessorials:         make([]entities.Accessorial, 0, len(c.Accessorials)),
	}
	for i, s := range c.Stops {
		sequence := s.Sequence
		if sequence == 0 {
			sequence = i + 1
		}
		newLoad.Stops = append(newLoad.Stops, entities.Stop{
			Sequence:         sequence,
			Type:             entities.StopType(s.Type),
			Facility:         s.Facility,
			Address:          s.Address,
			AppointmentStart: s.AppointmentStart.UTC(),
			AppointmentEnd:   s.AppointmentEnd.UTC(),
		})
	}
	for _, a := range c.Accessorials {
		newLoad.Accessorials = append(newLoad.Accessorials, a.ToDomain())
	}
	return newLoad
}

func (a AccessorialCreate) ToDomain() entities.Accessorial {
	return entities.Accessorial{
		Type:        a.Type,
		Description: a.Description,
		Quantity:    a.Quantity,
		Rate:        a.Rate,
	}
}

func (u LoadUpdate) ToDomain() entities.LoadUpdate {
	return entities.LoadUpdate{
		RateAmount:            u.RateAmount,
		FuelSurchargePercent:  u.FuelSurchargePercent,
		FuelSurchargeAmount:   u.FuelSurchargeAmount,
		LoadedMiles:           u.LoadedMiles,
		EmptyMiles:            u.EmptyMiles,
		ExcludeFromSettlement: u.ExcludeFromSettlement,
	}
}

func FromDriver(d *entities.Driver) Driver {
	return Driver{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Phone:        d.Phone,
		Status:       d.Status.String(),
		PayModel:     string(d.PayModel),
		PayRate:      d.PayRate,
		MinPerMile:   d.MinPerMile,
		TeamDriverID: d.TeamDriverID,
	}
}

func FromSettlement(s *entities.Settlement) Settlement {
	settlement := Settlement{
		ID:          s.ID,
		Number:      s.Number,
		DriverID:    s.DriverID,
		PeriodStart: s.PeriodStart.Format(DateLayout),
		PeriodEnd:   s.PeriodEnd.Format(DateLayout),
		GrossPay:    s.GrossPay,
		Deductions:  s.Deductions,
		NetPay:      s.NetPay,
		TotalMiles:  s.TotalMiles,
		LoadCount:   s.LoadCount,
		Status:      string(s.Status),
		RequestedBy: s.RequestedBy,
		ApprovedAt:  s.ApprovedAt,
		PaidAt:      s.PaidAt,
		CreatedAt:   s.CreatedAt,
		LineItems:   make([]SettlementLineItem, 0, len(s.LineItems)),
	}
	for _, item := range s.LineItems {
		settlement.LineItems = append(settlement.LineItems, SettlementLineItem{
			Sequence:    item.Sequence,
			Type:        string(item.Type),
			LoadID:      item.LoadID,
			DeductionID: item.DeductionID,
			Description: item.Description,
			Miles:       item.Miles,
			Amount:      item.Amount,
		})
	}
	return settlement
}

func FromInvoice(i *entities.Invoice) Invoice {
	invoice := Invoice{
		ID:                 i.ID,
		Number:             i.Number,
		CustomerID:         i.CustomerID,
		Status:             string(i.Status),
		IssueDate:          i.IssueDate.Format(DateLayout),
		DueDate:            i.DueDate.Format(DateLayout),
		Subtotal:           i.Subtotal,
		FuelSurchargeTotal: i.FuelSurchargeTotal,
		AccessorialTotal:   i.AccessorialTotal,
		Total:              i.Total,
		AmountPaid:         i.AmountPaid,
		BalanceDue:         i.BalanceDue,
		Notes:              i.Notes,
		SentAt:             i.SentAt,
		PaidAt:             i.PaidAt,
		VoidedAt:           i.VoidedAt,
		CreatedAt:          i.CreatedAt,
	}
	for _, item := range i.LineItems {
		invoice.LineItems = append(invoice.LineItems, InvoiceLineItem{
			Sequence:    item.Sequence,
			LoadID:      item.LoadID,
			Type:        string(item.Type),
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return invoice
}
