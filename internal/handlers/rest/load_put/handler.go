package load_put

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
	handlerLog := log.With(logger.NewField("handler", "load_put"))

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

	var loadUpdateDTO dto.LoadUpdate
	if err := json.NewDecoder(r.Body).Decode(&loadUpdateDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, loadUpdateDTO.ToDomain())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromLoad(updated))
}
