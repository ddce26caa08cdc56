package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrInvalidTTL      = errors.New("invalid TTL")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidType     = errors.New("invalid type")
	ErrEmptyValue      = errors.New("empty value")
	ErrRequired        = errors.New("required field missing")
	ErrMissingSecret   = errors.New("missing secret reference")

	ErrConfigReadFailed   = errors.New("config read failed")
	ErrConfigParseFailed  = errors.New("config parse failed")
	ErrConfigValidateFail = errors.New("config validation failed")
	ErrConfigNotFound     = errors.New("config not found")
	ErrMissingReference   = errors.New("missing reference")
	ErrRecordConflict     = errors.New("record conflict")
	ErrZoneConflict       = errors.New("zone conflict")

	ErrPlanReadFailed    = errors.New("plan read failed")
	ErrPlanWriteFailed   = errors.New("plan write failed")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanStale         = errors.New("plan is stale, run plan again")
	ErrZoneNotConfigured = errors.New("zone not configured")
	ErrRecordNotFound    = errors.New("record not found")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}

type OpError struct {
	Op    string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}
