package invoice_post

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
	handlerLog := log.With(logger.NewField("handler", "invoice_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var invoiceDTO dto.InvoiceCreate
	if err := json.NewDecoder(r.Body).Decode(&invoiceDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	issueDate, err := dto.ParseDate(invoiceDTO.IssueDate)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	invoice, err := h.service.Generate(r.Context(), invoiceDTO.CustomerID, issueDate, invoiceDTO.LoadIDs)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if invoice == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.log.Info("invoice generated",
		logger.NewField("invoice_id", invoice.ID),
		logger.NewField("customer_id", invoice.CustomerID),
		logger.NewField("number", invoice.Number),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.FromInvoice(invoice))
}
