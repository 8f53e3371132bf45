package invoice_put

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
	handlerLog := log.With(logger.NewField("handler", "invoice_put"))

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

	var updateDTO dto.InvoiceDraftUpdate
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	update := entities.InvoiceDraftUpdate{Notes: updateDTO.Notes}
	if updateDTO.DueDate != nil {
		dueDate, err := dto.ParseDate(*updateDTO.DueDate)
		if err != nil {
			response.Error(w, h.log, err)
			return
		}
		update.DueDate = &dueDate
	}

	invoice, err := h.service.UpdateDraft(r.Context(), id, update)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromInvoice(invoice))
}
