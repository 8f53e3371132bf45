package invoice_status_post

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
	handlerLog := log.With(logger.NewField("handler", "invoice_status_post"))

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

	var statusDTO dto.StatusChange
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	invoice, err := h.service.ChangeStatus(r.Context(), id, entities.InvoiceStatus(statusDTO.Status))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("invoice status changed",
		logger.NewField("invoice_id", id),
		logger.NewField("status", string(invoice.Status)),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromInvoice(invoice))
}
