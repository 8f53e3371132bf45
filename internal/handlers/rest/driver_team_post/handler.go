package driver_team_post

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	handlerLog := log.With(logger.NewField("handler", "driver_team_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid driver id")
		return
	}

	var pairDTO dto.TeamPair
	if err := json.NewDecoder(r.Body).Decode(&pairDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	driver, err := h.service.PairTeam(r.Context(), id, pairDTO.PartnerID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("drivers paired",
		logger.NewField("driver_id", id),
		logger.NewField("partner_id", pairDTO.PartnerID),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromDriver(driver))
}
