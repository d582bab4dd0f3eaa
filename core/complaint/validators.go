package complaint

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bweni/core"
)

var (
	categoryTag  = "complaintcategory"
	categoryText = "invalid complaint category"

	priorityTag  = "complaintpriority"
	priorityText = "invalid complaint priority"

	statusTag  = "complaintstatus"
	statusText = "invalid complaint status"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)

	_ = validate.RegisterValidation(priorityTag, priorityValidation)
	core.RegisterCustomTranslation(validate, translator, priorityTag, priorityText)

	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func categoryValidation(fl validator.FieldLevel) bool {
	val := Category(fl.Field().String())
	for _, cat := range Categories {
		if val == cat {
			return true
		}
	}
	return false
}

func priorityValidation(fl validator.FieldLevel) bool {
	val := Priority(fl.Field().String())
	for _, pri := range Priorities {
		if val == pri {
			return true
		}
	}
	return false
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
