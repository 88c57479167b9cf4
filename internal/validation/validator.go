// Package validation wraps go-playground/validator with the storefront's
// custom rules (cpf, cep) and maps violations to user-facing messages. These
// checks run client-side, before any network call; the server re-validates.
package validation

import (
	"fmt"
	"strings"

	domainerrors "sabor/internal/domain/errors"
	"sabor/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates form input structs via their validate tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the cpf and cep rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for blank tags or nil funcs.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return ValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return ValidCEP(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s and returns ErrValidationFailed carrying a message for
// the first violated field, or nil when the struct is valid.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fieldMessage(violations[0]))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// fieldMessage builds the inline message for a single violation.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: campo obrigatório", field)
	case "email":
		return fmt.Sprintf("%s: e-mail inválido", field)
	case "cpf":
		return fmt.Sprintf("%s: CPF inválido", field)
	case "cep":
		return fmt.Sprintf("%s: CEP deve ter 8 dígitos", field)
	case "credit_card":
		return fmt.Sprintf("%s: número de cartão inválido", field)
	case "min":
		return fmt.Sprintf("%s: muito curto (mínimo %s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: muito longo (máximo %s)", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s: deve ter %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: valor inválido", field)
	default:
		return fmt.Sprintf("%s: inválido (%s)", field, fe.Tag())
	}
}

// OnlyDigits strips every non-digit rune.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ValidCEP reports whether s is a valid CEP: exactly 8 digits, separators
// allowed on input.
func ValidCEP(s string) bool {
	return len(OnlyDigits(s)) == 8
}

// ValidCPF reports whether s is a valid CPF: 11 digits with correct check
// digits, separators allowed on input.
func ValidCPF(s string) bool {
	digits := OnlyDigits(s)
	if len(digits) != 11 {
		return false
	}

	// All-same-digit sequences pass the checksum but are not issued.
	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false

			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) && checkDigit(digits, 10)
}

// checkDigit verifies the CPF check digit at position pos (9 or 10).
func checkDigit(digits string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}

	remainder := sum * 10 % 11 % 10

	return remainder == int(digits[pos]-'0')
}
