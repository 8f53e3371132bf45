package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/pkg/logger"
)

// RetryAfterSeconds is sent with 503 responses caused by lock contention.
const RetryAfterSeconds = 1

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error writes the status and body matching the error kind. Unknown errors are
// logged and answered with 500 without leaking details.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status, body := Describe(err)
	if status == http.StatusInternalServerError {
		log.Error("unexpected service error", logger.NewField("error", err))
	}
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	JSON(w, log, status, body)
}

// Describe maps an error to its HTTP status and response body.
func Describe(err error) (int, dto.Error) {
	var conflictErr *entities.SchedulingConflictError
	if errors.As(err, &conflictErr) {
		body := dto.Error{
			Error:     err.Error(),
			Kind:      "scheduling_conflict",
			Conflicts: make([]dto.LoadConflict, 0, len(conflictErr.Conflicts)),
		}
		if conflictErr.TruckID != nil {
			body.TruckID = conflictErr.TruckID
		} else {
			body.DriverID = &conflictErr.DriverID
		}
		for _, c := range conflictErr.Conflicts {
			body.Conflicts = append(body.Conflicts, dto.LoadConflict{
				LoadID:     c.LoadID,
				Status:     c.Status.String(),
				PickupAt:   c.PickupAt,
				DeliveryAt: c.DeliveryAt,
			})
		}
		return http.StatusConflict, body
	}

	var transitionErr *entities.TransitionError
	if errors.As(err, &transitionErr) {
		reason := transitionErr.Reason
		if errors.Is(err, entities.ErrInvalidTransition) {
			return http.StatusConflict, dto.Error{Error: err.Error(), Kind: "invalid_transition", Reason: &reason}
		}
		return http.StatusUnprocessableEntity, dto.Error{Error: err.Error(), Kind: "business_rule_violation", Reason: &reason}
	}

	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound, dto.Error{Error: err.Error(), Kind: "not_found"}
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Kind: "validation"}
	case errors.Is(err, entities.ErrInvalidTransition):
		return http.StatusConflict, dto.Error{Error: err.Error(), Kind: "invalid_transition"}
	case errors.Is(err, entities.ErrBusinessRuleViolation):
		return http.StatusUnprocessableEntity, dto.Error{Error: err.Error(), Kind: "business_rule_violation"}
	case errors.Is(err, entities.ErrConcurrencyContention):
		return http.StatusServiceUnavailable, dto.Error{Error: err.Error(), Kind: "concurrency_contention"}
	default:
		return http.StatusInternalServerError, dto.Error{Error: http.StatusText(http.StatusInternalServerError), Kind: "internal"}
	}
}

// BadRequest answers malformed path parameters and bodies that never reach a service.
func BadRequest(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.Error{Error: message, Kind: "validation"})
}
