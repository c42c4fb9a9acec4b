// Package validate holds the process validator with English messages
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	perr "tzdetect/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc bundles the validator and its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Get returns the validator singleton
func Get() *Svc {
	once.Do(func() {
		loc := en.New()
		uni := ut.New(loc, loc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer the name callers configure with (tz, json) over the Go field name
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"tz", "json"} {
				tag := fld.Tag.Get(key)
				if i := strings.Index(tag, ","); i >= 0 {
					tag = tag[:i]
				}
				if tag != "" && tag != "-" {
					return tag
				}
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerParamName(v, trans)

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

// Struct validates s and maps the first failure to a perr validation error with field set
func Struct(s any) error {
	err := Get().Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(Get().Translator)), fe.Field())
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
}

// ValidParamName reports whether s can be used verbatim as a query parameter name
func ValidParamName(s string) bool {
	return s != "" && !strings.ContainsAny(s, "&=?# \t\r\n")
}

func registerParamName(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("param_name", func(fl validator.FieldLevel) bool {
		return ValidParamName(fl.Field().String())
	})
	_ = v.RegisterTranslation("param_name", trans,
		func(ut ut.Translator) error {
			return ut.Add("param_name", "{0} must be a non-empty query parameter name without &=?# or spaces", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("param_name", fe.Field())
			return msg
		},
	)
}
