package fine

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bweni/core"
)

var (
	fineReasonTag  = "finereason"
	fineReasonText = "invalid fine reason"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(fineReasonTag, fineReasonValidation)
	core.RegisterCustomTranslation(validate, translator, fineReasonTag, fineReasonText)
}

// fineReasonValidation checks that the provided reason is one of Reasons.
func fineReasonValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, reason := range Reasons {
		if val == reason {
			return true
		}
	}
	return false
}
