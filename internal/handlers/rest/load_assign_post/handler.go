package load_assign_post

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
	handlerLog := log.With(logger.NewField("handler", "load_assign_post"))

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

	var assignmentDTO dto.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignmentDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	load, err := h.service.Assign(r.Context(), entities.AssignmentRequest{
		LoadID:       id,
		DriverID:     assignmentDTO.DriverID,
		TeamDriverID: assignmentDTO.TeamDriverID,
		TruckID:      assignmentDTO.TruckID,
		TrailerID:    assignmentDTO.TrailerID,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("load assigned",
		logger.NewField("load_id", id),
		logger.NewField("driver_id", assignmentDTO.DriverID),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromLoad(load))
}
