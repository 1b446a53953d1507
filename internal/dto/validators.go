package dto

import (
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding tags used by request DTOs.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("decimalgte0", validateDecimalGTE0); err != nil {
		return err
	}
	if err := v.RegisterValidation("action", validateAction); err != nil {
		return err
	}
	return v.RegisterValidation("doctype", validateDocumentType)
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	switch d := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return !d.IsNegative()
	case *decimal.Decimal:
		return d == nil || !d.IsNegative()
	}
	return false
}

func validateAction(fl validator.FieldLevel) bool {
	return domain.Action(fl.Field().String()).IsValid()
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return domain.DocumentType(fl.Field().String()).IsValid()
}
