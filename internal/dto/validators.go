package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs:
//
//	yearmonth   a "YYYY-MM" string
//	txncategory REVENUE or EXPENSE
//	userrole    ADMIN, MEMBER or READONLY
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("yearmonth", validateYearMonth); err != nil {
		return err
	}
	if err := v.RegisterValidation("txncategory", validateTxnCategory); err != nil {
		return err
	}
	return v.RegisterValidation("userrole", validateUserRole)
}

func validateYearMonth(fl validator.FieldLevel) bool {
	ym, err := domain.ParseYearMonth(fl.Field().String())
	return err == nil && ym.Valid()
}

func validateTxnCategory(fl validator.FieldLevel) bool {
	return domain.TransactionCategory(fl.Field().String()).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	return domain.UserRole(fl.Field().String()).Valid()
}
