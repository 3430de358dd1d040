package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerCustom(v *validator.Validate) {
	v.RegisterValidation("port", func(fl validator.FieldLevel) bool {
		p, err := strconv.Atoi(strings.TrimPrefix(fl.Field().String(), ":"))
		if err != nil {
			return false
		}
		return p > 0 && p <= 65535
	})
	v.RegisterValidation("mongouri", func(fl validator.FieldLevel) bool {
		uri := fl.Field().String()
		return strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://")
	})
}
