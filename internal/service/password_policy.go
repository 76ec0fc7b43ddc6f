package service

import (
	"unicode"

	"github.com/compravenda/api/internal/config"
)

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength <= 0 &&
		!policy.RequireUpper &&
		!policy.RequireLower &&
		!policy.RequireNumber &&
		!policy.RequireSpecial {
		return nil
	}

	if policy.MinLength > 0 {
		if len([]rune(password)) < policy.MinLength {
			return &ValidationError{Message: "A senha é muito curta."}
		}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return &ValidationError{Message: "A senha deve conter ao menos uma letra maiúscula."}
	}
	if policy.RequireLower && !hasLower {
		return &ValidationError{Message: "A senha deve conter ao menos uma letra minúscula."}
	}
	if policy.RequireNumber && !hasNumber {
		return &ValidationError{Message: "A senha deve conter ao menos um número."}
	}
	if policy.RequireSpecial && !hasSpecial {
		return &ValidationError{Message: "A senha deve conter ao menos um caractere especial."}
	}
	return nil
}
