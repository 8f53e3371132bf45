package load_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "load_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loadCreateDTO dto.LoadCreate
	if err := json.NewDecoder(r.Body).Decode(&loadCreateDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), loadCreateDTO.ToDomain())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("load created",
		logger.NewField("load_id", created.ID),
		logger.NewField("reference", created.Reference),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.FromLoad(created))
}
