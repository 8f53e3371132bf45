package load_status_post

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
	handlerLog := log.With(logger.NewField("handler", "load_status_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid load id")
		return
	}

	var statusDTO dto.LoadStatusChange
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	status := entities.LoadStatus(statusDTO.Status)
	if !status.IsValid() {
		response.BadRequest(w, h.log, "unknown load status")
		return
	}

	load, err := h.service.ChangeStatus(r.Context(), entities.StatusChangeRequest{
		LoadID:    id,
		Status:    status,
		CarrierID: statusDTO.CarrierID,
		Reason:    statusDTO.Reason,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("load status changed",
		logger.NewField("load_id", id),
		logger.NewField("status", load.Status.String()),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromLoad(load))
}
