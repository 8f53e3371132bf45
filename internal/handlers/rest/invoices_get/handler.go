package invoices_get

import (
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "invoices_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

// ServeHTTP supports ?customer_id=&status=&limit=&offset= query parameters.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entities.InvoiceFilter{Limit: defaultLimit}

	if raw := query.Get("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, h.log, "invalid customer_id")
			return
		}
		filter.CustomerID = &customerID
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.InvoiceStatus(raw)
		filter.Status = &status
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			response.BadRequest(w, h.log, "invalid limit")
			return
		}
		filter.Limit = min(limit, maxLimit)
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, h.log, "invalid offset")
			return
		}
		filter.Offset = offset
	}

	invoices, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	result := make([]dto.Invoice, 0, len(invoices))
	for i := range invoices {
		result = append(result, dto.FromInvoice(&invoices[i]))
	}
	response.JSON(w, h.log, http.StatusOK, result)
}
