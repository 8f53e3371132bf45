package load_imported

import (
	"time"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

// importedEvent is the payload of the loads.imported topic produced by the
// document extraction pipeline.
type importedEvent struct {
	DocumentID           string           `json:"document_id"`
	Reference            string           `json:"reference"`
	CustomerID           int64            `json:"customer_id"`
	RateAmount           decimal.Decimal  `json:"rate_amount"`
	RateType             string           `json:"rate_type"`
	FuelSurchargePercent *decimal.Decimal `json:"fuel_surcharge_percent"`
	FuelSurchargeAmount  *decimal.Decimal `json:"fuel_surcharge_amount"`
	LoadedMiles          int64            `json:"loaded_miles"`
	EmptyMiles           int64            `json:"empty_miles"`
	Stops                []importedStop   `json:"stops"`
	Confidence           *float64         `json:"confidence"`
	SourceDocumentURL    *string          `json:"source_document_url"`
}

type importedStop struct {
	Type             string    `json:"type"`
	Facility         string    `json:"facility"`
	Address          string    `json:"address"`
	AppointmentStart time.Time `json:"appointment_start"`
	AppointmentEnd   time.Time `json:"appointment_end"`
}

func (e importedEvent) toDomain() entities.NewLoad {
	newLoad := entities.NewLoad{
		Reference:            e.Reference,
		CustomerID:           e.CustomerID,
		RateAmount:           e.RateAmount,
		RateType:             entities.RateType(e.RateType),
		FuelSurchargePercent: e.FuelSurchargePercent,
		FuelSurchargeAmount:  e.FuelSurchargeAmount,
		LoadedMiles:          e.LoadedMiles,
		EmptyMiles:           e.EmptyMiles,
		Stops:                make([]entities.Stop, 0, len(e.Stops)),
		ImportConfidence:     e.Confidence,
		SourceDocumentURL:    e.SourceDocumentURL,
	}
	// порядок стопов задаётся порядком в документе
	for i, s := range e.Stops {
		newLoad.Stops = append(newLoad.Stops, entities.Stop{
			Sequence:         i + 1,
			Type:             entities.StopType(s.Type),
			Facility:         s.Facility,
			Address:          s.Address,
			AppointmentStart: s.AppointmentStart.UTC(),
			AppointmentEnd:   s.AppointmentEnd.UTC(),
		})
	}
	return newLoad
}
