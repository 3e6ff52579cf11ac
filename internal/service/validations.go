package service

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Time of day as "HH:MM", 24-hour clock
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			parts := strings.Split(value, ":")
			if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
				return false
			}
			hour, err := strconv.Atoi(parts[0])
			if err != nil || hour < 0 || hour > 23 {
				return false
			}
			minute, err := strconv.Atoi(parts[1])
			if err != nil || minute < 0 || minute > 59 {
				return false
			}
			return true
		})
	})
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		joined := error(errorvalues.ErrValidation)
		for _, fieldErr := range validationErrors {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.New("validation unexpected error: " + err.Error())
}
