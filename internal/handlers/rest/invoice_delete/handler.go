package invoice_delete

import (
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "invoice_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid invoice id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("invoice deleted", logger.NewField("invoice_id", id))
	w.WriteHeader(http.StatusNoContent)
}
