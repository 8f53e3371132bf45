package load_accessorial_post

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
	handlerLog := log.With(logger.NewField("handler", "load_accessorial_post"))

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

	var accessorialDTO dto.AccessorialCreate
	if err := json.NewDecoder(r.Body).Decode(&accessorialDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	updated, err := h.service.AddAccessorial(r.Context(), id, accessorialDTO.ToDomain())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.FromLoad(updated))
}
