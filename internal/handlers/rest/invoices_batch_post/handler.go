package invoices_batch_post

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
	handlerLog := log.With(logger.NewField("handler", "invoices_batch_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var batchDTO dto.InvoiceBatchCreate
	if err := json.NewDecoder(r.Body).Decode(&batchDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	issueDate, err := dto.ParseDate(batchDTO.IssueDate)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	outcomes, err := h.service.GenerateBatch(r.Context(), batchDTO.CustomerIDs, issueDate)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	failed := 0
	result := make([]dto.InvoiceOutcome, 0, len(outcomes))
	for _, outcome := range outcomes {
		item := dto.InvoiceOutcome{CustomerID: outcome.CustomerID}
		if outcome.Invoice != nil {
			invoice := dto.FromInvoice(outcome.Invoice)
			item.Invoice = &invoice
		}
		if outcome.Err != nil {
			failed++
			_, body := response.Describe(outcome.Err)
			item.Error = &body
		}
		result = append(result, item)
	}

	h.log.Info("invoice batch finished",
		logger.NewField("customers", len(outcomes)),
		logger.NewField("failed", failed),
	)
	response.JSON(w, h.log, http.StatusOK, result)
}
