package auth

import (
	"strings"
	"unicode"
)

// Validator holds the pre-submission checks the console runs before calling
// the auth endpoints. These are client-side guards only; the backend applies
// its own validation on top.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials checks a login form before submission.
func (v *Validator) ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return UsernameRequiredErr
	}
	if password == "" {
		return PasswordRequiredErr
	}
	return nil
}

// ValidatePassword enforces the sign-up password policy: at least 8
// characters, one uppercase letter and one digit.
func (v *Validator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return PasswordTooShortErr
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return PasswordNoUppercaseErr
	}
	if !hasDigit {
		return PasswordNoDigitErr
	}
	return nil
}

// ValidateSignUp checks a complete sign-up form, including the password
// confirmation match.
func (v *Validator) ValidateSignUp(params SignUpParams, confirmPassword string) error {
	if strings.TrimSpace(params.Name) == "" {
		return NameRequiredErr
	}
	if strings.TrimSpace(params.Username) == "" {
		return UsernameRequiredErr
	}
	if !strings.Contains(params.Email, "@") || !strings.Contains(params.Email, ".") {
		return InvalidEmailErr
	}
	if err := v.ValidatePassword(params.Password); err != nil {
		return err
	}
	if params.Password != confirmPassword {
		return PasswordMismatchErr
	}
	return nil
}
