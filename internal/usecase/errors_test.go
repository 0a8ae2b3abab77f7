package usecase

import (
	"errors"
	"fmt"
	"testing"

	"fibra_provisioning/internal/domain/entities"
)

func TestValidationError_Is(t *testing.T) {
	err := invalid("numero_documento", "is required")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var ve *ValidationError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &ve) || ve.Field != "numero_documento" {
		t.Fatalf("expected ValidationError with field, got %v", err)
	}
	if errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("validation error must not match business errors")
	}
}

func TestInvalidTransition_Message(t *testing.T) {
	err := invalidTransition(entities.ProcesoAprobada, entities.ProcesoNoAprobada)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err.Error() != "invalid transition: Aprobada -> NoAprobada" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
