package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorFields converts gin binding/validator errors into a
// field → message map suitable for RespondWithValidationError.
func BindingErrorFields(err error) map[string]string {
	fields := map[string]string{}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["body"] = "요청 본문을 해석할 수 없습니다"
		return fields
	}

	for _, fieldErr := range validationErrs {
		name := jsonFieldName(fieldErr)
		switch fieldErr.Tag() {
		case "required":
			fields[name] = "필수 항목입니다"
		case "max":
			fields[name] = fmt.Sprintf("%s자를 초과할 수 없습니다", fieldErr.Param())
		case "min":
			fields[name] = fmt.Sprintf("%s자 이상이어야 합니다", fieldErr.Param())
		case "email":
			fields[name] = "올바른 이메일 형식이 아닙니다"
		default:
			fields[name] = "입력값이 올바르지 않습니다"
		}
	}

	return fields
}

// jsonFieldName lowercases the struct field name so it matches the json tag.
// Our request structs keep json tags as the snake_case of the field name.
func jsonFieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()
	var b strings.Builder
	prevUpper := false
	for i, r := range name {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
		prevUpper = upper
	}
	return b.String()
}
