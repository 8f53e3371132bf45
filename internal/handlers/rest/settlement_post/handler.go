package settlement_post

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
	handlerLog := log.With(logger.NewField("handler", "settlement_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var settlementDTO dto.SettlementCreate
	if err := json.NewDecoder(r.Body).Decode(&settlementDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	period, err := parsePeriod(settlementDTO.PeriodStart, settlementDTO.PeriodEnd)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	settlement, err := h.service.Generate(r.Context(), settlementDTO.DriverID, period, settlementDTO.RequestedBy)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	// нечего рассчитывать
	if settlement == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.log.Info("settlement generated",
		logger.NewField("settlement_id", settlement.ID),
		logger.NewField("driver_id", settlement.DriverID),
		logger.NewField("number", settlement.Number),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.FromSettlement(settlement))
}

func parsePeriod(start, end string) (entities.SettlementPeriod, error) {
	periodStart, err := dto.ParseDate(start)
	if err != nil {
		return entities.SettlementPeriod{}, err
	}
	periodEnd, err := dto.ParseDate(end)
	if err != nil {
		return entities.SettlementPeriod{}, err
	}
	return entities.SettlementPeriod{Start: periodStart, End: periodEnd}, nil
}
