package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nusankara/erp_backoffice/internal/utils"
)

// RegisterValidations installs custom binding validators on gin's
// validator engine. "idr_amount" accepts Indonesian-formatted amount
// strings such as "1.000.000,50"; malformed input is rejected at the
// binding layer before a handler runs.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("idr_amount", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseIDRAmount(fl.Field().String())
		return err == nil
	})
}
