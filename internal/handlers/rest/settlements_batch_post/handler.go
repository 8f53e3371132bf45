package settlements_batch_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "settlements_batch_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP answers 200 with one outcome per requested driver, in request order.
// Drivers with nothing eligible have neither a settlement nor an error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var batchDTO dto.SettlementBatchCreate
	if err := json.NewDecoder(r.Body).Decode(&batchDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	periodStart, err := dto.ParseDate(batchDTO.PeriodStart)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}
	periodEnd, err := dto.ParseDate(batchDTO.PeriodEnd)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	outcomes, err := h.service.GenerateBatch(
		r.Context(),
		batchDTO.DriverIDs,
		entities.SettlementPeriod{Start: periodStart, End: periodEnd},
		batchDTO.RequestedBy,
	)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	failed := 0
	result := make([]dto.SettlementOutcome, 0, len(outcomes))
	for _, outcome := range outcomes {
		item := dto.SettlementOutcome{DriverID: outcome.DriverID}
		if outcome.Settlement != nil {
			settlement := dto.FromSettlement(outcome.Settlement)
			item.Settlement = &settlement
		}
		if outcome.Err != nil {
			failed++
			_, body := response.Describe(outcome.Err)
			item.Error = &body
		}
		result = append(result, item)
	}

	h.log.Info("settlement batch finished",
		logger.NewField("drivers", len(outcomes)),
		logger.NewField("failed", failed),
	)
	response.JSON(w, h.log, http.StatusOK, result)
}
