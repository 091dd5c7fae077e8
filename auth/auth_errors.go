package auth

import "errors"

var (
	NotAuthenticatedErr    = errors.New("not authenticated")
	NameRequiredErr        = errors.New("name is required")
	UsernameRequiredErr    = errors.New("username is required")
	PasswordRequiredErr    = errors.New("password is required")
	InvalidEmailErr        = errors.New("invalid email address")
	PasswordTooShortErr    = errors.New("password must be at least 8 characters")
	PasswordNoUppercaseErr = errors.New("password must contain an uppercase letter")
	PasswordNoDigitErr     = errors.New("password must contain a digit")
	PasswordMismatchErr    = errors.New("passwords do not match")
)
