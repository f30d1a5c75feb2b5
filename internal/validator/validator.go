// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneta/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("reminder_type", validateReminderType)
		_ = v.RegisterValidation("frequency", validateFrequency)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsExpense()
}

func validateReminderType(fl validator.FieldLevel) bool {
	switch models.ReminderType(fl.Field().String()) {
	case models.ReminderTypeGeneral, models.ReminderTypeExpenseLimit, models.ReminderTypeSavingsTarget:
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch models.Frequency(fl.Field().String()) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return true
	}
	return false
}
