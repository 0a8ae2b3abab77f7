package usecase

import (
	"errors"
	"fmt"
)

// Business-rule rejections. None of them is retried automatically; the HTTP
// layer turns each into a specific operator-facing message.
var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrIncompletePairing    = errors.New("incomplete pairing")
	ErrSlotAlreadyAssigned  = errors.New("p2p slot already assigned")
	ErrViabilityNotEligible = errors.New("viability not eligible for pairing")
	ErrOrderAlreadyExists   = errors.New("viability already has a service order")
	ErrOrderNotActivatable  = errors.New("service order not activatable")
	ErrOrderLocked          = errors.New("service order locked")
	ErrAlreadyTerminal      = errors.New("record already in a terminal state")
	ErrMissingEvidence      = errors.New("missing otdr evidence")
	ErrMissingPricing       = errors.New("missing recurring charge")
	ErrConcurrencyConflict  = errors.New("record changed, please refresh")

	ErrViabilityNotFound = errors.New("viability not found")
	ErrP2PNotFound       = errors.New("p2p not found")
	ErrOrderNotFound     = errors.New("service order not found")
	ErrEnlaceNotFound    = errors.New("enlace not found")
)

// ValidationError reports a malformed or missing input field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func invalidTransition(from, to any) error {
	return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, from, to)
}
