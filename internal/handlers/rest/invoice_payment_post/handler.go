package invoice_payment_post

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
	handlerLog := log.With(logger.NewField("handler", "invoice_payment_post"))

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

	var paymentDTO dto.Payment
	if err := json.NewDecoder(r.Body).Decode(&paymentDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	invoice, err := h.service.ApplyPayment(r.Context(), id, paymentDTO.Amount)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("payment applied",
		logger.NewField("invoice_id", id),
		logger.NewField("amount", paymentDTO.Amount.String()),
		logger.NewField("balance_due", invoice.BalanceDue.String()),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromInvoice(invoice))
}
