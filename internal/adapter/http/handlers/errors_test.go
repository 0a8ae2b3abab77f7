package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fibra_provisioning/internal/usecase"
)

func TestMapProvisioningError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Field: "nombre", Reason: "required"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"viability not found", usecase.ErrViabilityNotFound, http.StatusNotFound, "VIABILITY_NOT_FOUND"},
		{"p2p not found", usecase.ErrP2PNotFound, http.StatusNotFound, "P2P_NOT_FOUND"},
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound, "SERVICE_ORDER_NOT_FOUND"},
		{"enlace not found", usecase.ErrEnlaceNotFound, http.StatusNotFound, "ENLACE_NOT_FOUND"},
		{"wrapped transition", fmt.Errorf("%w: Aprobada -> Proceso", usecase.ErrInvalidTransition), http.StatusConflict, "INVALID_TRANSITION"},
		{"incomplete pairing", usecase.ErrIncompletePairing, http.StatusConflict, "INCOMPLETE_PAIRING"},
		{"slot assigned", usecase.ErrSlotAlreadyAssigned, http.StatusConflict, "SLOT_ALREADY_ASSIGNED"},
		{"not eligible", usecase.ErrViabilityNotEligible, http.StatusConflict, "VIABILITY_NOT_ELIGIBLE"},
		{"order exists", usecase.ErrOrderAlreadyExists, http.StatusConflict, "SERVICE_ORDER_ALREADY_EXISTS"},
		{"not activatable", usecase.ErrOrderNotActivatable, http.StatusConflict, "SERVICE_ORDER_NOT_ACTIVATABLE"},
		{"locked", usecase.ErrOrderLocked, http.StatusConflict, "SERVICE_ORDER_LOCKED"},
		{"terminal", usecase.ErrAlreadyTerminal, http.StatusConflict, "ALREADY_TERMINAL"},
		{"conflict", usecase.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"missing evidence", usecase.ErrMissingEvidence, http.StatusUnprocessableEntity, "MISSING_EVIDENCE"},
		{"missing pricing", usecase.ErrMissingPricing, http.StatusUnprocessableEntity, "MISSING_PRICING"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapProvisioningError(tt.err)
			if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapProvisioningError_ValidationField(t *testing.T) {
	appErr := mapProvisioningError(&usecase.ValidationError{Field: "fecha_activacion", Reason: "expected YYYY-MM-DD"})
	body := appErr.ToHTTPError()
	if body.Field != "fecha_activacion" {
		t.Fatalf("expected field to be reported, got %+v", body)
	}
}
