package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fibra_provisioning/internal/infrastructure/observability"
	"fibra_provisioning/internal/usecase"
	"fibra_provisioning/pkg"

	"github.com/gin-gonic/gin"
)

const resultOK = "ok"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapProvisioningError translates use case errors into the HTTP error shape.
func mapProvisioningError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", ve.Error(), http.StatusBadRequest).WithField(ve.Field)
	}

	switch {
	case errors.Is(err, usecase.ErrViabilityNotFound):
		return pkg.NewDomainErrorSimple("VIABILITY_NOT_FOUND", "Viability not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrP2PNotFound):
		return pkg.NewDomainErrorSimple("P2P_NOT_FOUND", "P2P not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnlaceNotFound):
		return pkg.NewDomainErrorSimple("ENLACE_NOT_FOUND", "Enlace not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "The record cannot move to the requested state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrIncompletePairing):
		return pkg.NewDomainErrorSimple("INCOMPLETE_PAIRING", "Both P2P points must be assigned before approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrSlotAlreadyAssigned):
		return pkg.NewDomainErrorSimple("SLOT_ALREADY_ASSIGNED", "The P2P point is already assigned", http.StatusConflict)
	case errors.Is(err, usecase.ErrViabilityNotEligible):
		return pkg.NewDomainErrorSimple("VIABILITY_NOT_ELIGIBLE", "The viability cannot be paired", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_ALREADY_EXISTS", "The viability already has a service order", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotActivatable):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_ACTIVATABLE", "Only service orders in process can be activated", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_LOCKED", "The service order can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyTerminal):
		return pkg.NewDomainErrorSimple("ALREADY_TERMINAL", "The record is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "The record changed, please refresh", http.StatusConflict)

	case errors.Is(err, usecase.ErrMissingEvidence):
		return pkg.NewDomainErrorSimple("MISSING_EVIDENCE", "OTDR evidence files are missing for this order", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingPricing):
		return pkg.NewDomainErrorSimple("MISSING_PRICING", "The service order has no recurring charge", http.StatusUnprocessableEntity)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respond writes either the mapped error or body, and counts the outcome of
// entity/action.
func respond(c *gin.Context, entity, action string, err error, status int, body any) {
	if err != nil {
		appErr := mapProvisioningError(err)
		observability.RecordTransition(entity, action, appErr.Code)
		writeError(c, appErr)
		return
	}
	observability.RecordTransition(entity, action, resultOK)
	c.JSON(status, body)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest).WithField(name))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidPayload)
		return false
	}
	return true
}
