package core

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	dateOnlyTag   = "dateonly"
	dateOnlyText  = "must be a calendar date in YYYY-MM-DD form"
	dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	attStatusTag  = "attstatus"
	attStatusText = "must be one of: present, absent, late, excused"

	studentStatusTag  = "studentstatus"
	studentStatusText = "must be one of: active, inactive, graduated, transferred"

	gradeLevelTag  = "gradelevel"
	gradeLevelText = "must be one of: 9, 10, 11, 12"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// NewValidator instantiates the app validator and its english translator.
func NewValidator() (*validator.Validate, ut.Translator) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	InitValidators(validate, translator)
	return validate, translator
}

// InitValidators registers our custom validators and translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(dateOnlyTag, dateOnlyValidation)
	RegisterCustomTranslation(validate, translator, dateOnlyTag, dateOnlyText)

	_ = validate.RegisterValidation(attStatusTag, oneOfValidation("present", "absent", "late", "excused"))
	RegisterCustomTranslation(validate, translator, attStatusTag, attStatusText)

	_ = validate.RegisterValidation(studentStatusTag, oneOfValidation("active", "inactive", "graduated", "transferred"))
	RegisterCustomTranslation(validate, translator, studentStatusTag, studentStatusText)

	_ = validate.RegisterValidation(gradeLevelTag, oneOfValidation("9", "10", "11", "12"))
	RegisterCustomTranslation(validate, translator, gradeLevelTag, gradeLevelText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// dateOnlyValidation only allows zero-padded YYYY-MM-DD dates.
func dateOnlyValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !dateOnlyRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(DateLayout, val)
	return err == nil
}

func oneOfValidation(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, a := range allowed {
			if val == a {
				return true
			}
		}
		return false
	}
}
