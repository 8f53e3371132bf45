package ping_get

import (
	"net/http"
	"time"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service string
	now     func() time.Time
}

func New(log handlerLogger, service string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
		Service: h.service,
		Time:    h.now().UTC().Format(time.RFC3339),
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
