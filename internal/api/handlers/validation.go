package handlers

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/TableBookingService/pkg/types"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// hhmm время суток в формате HH:MM
var hhmm validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := types.NewTimeStringFromString(s)
	return err == nil
}

// Validator общий экземпляр с зарегистрированными правилами
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("hhmm", hhmm)
	})
	return validate
}

// ValidateStruct проверяет теги validate у структуры
func ValidateStruct(v interface{}) error {
	return Validator().Struct(v)
}
