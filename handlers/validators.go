package handlers

import (
	"bistro-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the closed-enum validators on gin's
// binding engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("menucategory", func(fl validator.FieldLevel) bool {
		return models.IsValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("foodtype", func(fl validator.FieldLevel) bool {
		t := models.FoodType(fl.Field().String())
		return t == models.TypeVeg || t == models.TypeNonVeg
	})
	_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		m := models.PaymentMethod(fl.Field().String())
		return m == models.PaymentCash || m == models.PaymentCard || m == models.PaymentUPI
	})
}
