package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bweni/core"
)

var (
	statusTag  = "attendancestatus"
	statusText = "invalid attendance status"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func statusValidation(fl validator.FieldLevel) bool {
	val := Status(fl.Field().String())
	for _, st := range Statuses {
		if val == st {
			return true
		}
	}
	return false
}
