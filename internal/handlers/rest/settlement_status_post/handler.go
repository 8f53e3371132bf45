package settlement_status_post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "settlement_status_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid settlement id")
		return
	}

	var statusDTO dto.StatusChange
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	settlement, err := h.service.AdvanceStatus(r.Context(), id, entities.SettlementStatus(statusDTO.Status))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("settlement status changed",
		logger.NewField("settlement_id", id),
		logger.NewField("status", string(settlement.Status)),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromSettlement(settlement))
}
