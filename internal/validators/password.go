// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [PasswordValidator.Validate] for credentials.
const (
	// FieldPassword runs the password policy.
	FieldPassword = "password"

	// FieldCredentials only checks that both credentials are present and
	// well formed. Used on the decrypt path, where the password policy
	// must not lock users out of data written under an older policy.
	FieldCredentials = "credentials"
)

// structValidate is a singleton validator instance; validator.Validate
// caches struct metadata and is safe for concurrent use.
var structValidate = validator.New(validator.WithRequiredStructEnabled())

// PasswordPolicy holds the password rules.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireLowercase bool
	RequireUppercase bool
	RequireDigit     bool
	RequireSpecial   bool
	RejectCommon     bool
}

// DefaultPasswordPolicy returns the product rules: 8 to 128 characters with
// lowercase, uppercase, digit and special characters, not a common password.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        128,
		RequireLowercase: true,
		RequireUppercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
		RejectCommon:     true,
	}
}

// PasswordValidator validates passwords and credentials.
type PasswordValidator struct {
	policy PasswordPolicy
}

func NewPasswordValidator(policy PasswordPolicy) Validator {
	return &PasswordValidator{policy: policy}
}

// Validate accepts a password string or [models.Credentials]. For
// credentials, no fields means every check; [FieldPassword] and
// [FieldCredentials] narrow it down.
func (v *PasswordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validatePassword(value)
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PasswordValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials, FieldPassword}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldCredentials:
			errs = append(errs, validateCredentialsShape(ctx, creds))
		case FieldPassword:
			errs = append(errs, v.validatePassword(creds.Password))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return errors.Join(errs...)
}

// validateCredentialsShape runs the struct tags of [models.Credentials].
func validateCredentialsShape(ctx context.Context, creds models.Credentials) error {
	err := structValidate.StructCtx(ctx, creds)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs []error
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Password":
			errs = append(errs, ErrPasswordEmpty)
		case "AccountID":
			errs = append(errs, fmt.Errorf("%w: failed %q rule", ErrInvalidAccountID, fe.Tag()))
		default:
			errs = append(errs, fmt.Errorf("%s: failed %q rule", fe.Field(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

// validatePassword applies the policy. Every failing rule is reported.
func (v *PasswordValidator) validatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	p := v.policy
	var errs []error

	n := utf8.RuneCountInString(password)
	if n < p.MinLength {
		errs = append(errs, fmt.Errorf("%w: minimum is %d characters", ErrPasswordTooShort, p.MinLength))
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		errs = append(errs, fmt.Errorf("%w: maximum is %d characters", ErrPasswordTooLong, p.MaxLength))
	}

	c := classify(password)
	if p.RequireLowercase && !c.lower {
		errs = append(errs, ErrPasswordNoLowercase)
	}
	if p.RequireUppercase && !c.upper {
		errs = append(errs, ErrPasswordNoUppercase)
	}
	if p.RequireDigit && !c.digit {
		errs = append(errs, ErrPasswordNoDigit)
	}
	if p.RequireSpecial && !c.special {
		errs = append(errs, ErrPasswordNoSpecial)
	}
	if p.RejectCommon && IsCommonPassword(password) {
		errs = append(errs, ErrPasswordCommon)
	}

	return errors.Join(errs...)
}

type charClasses struct {
	lower, upper, digit, special bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsDigit(r):
			c.digit = true
		case unicode.IsLetter(r):
			// caseless scripts count as neither
		default:
			c.special = true
		}
	}
	return c
}

// commonPasswords is a short blocklist of passwords that appear at the top
// of every breach corpus, including variants that satisfy the class rules.
var commonPasswords = map[string]struct{}{}

func init() {
	for _, p := range []string{
		"password", "password1", "password1!", "password123", "password123!",
		"passw0rd", "p@ssw0rd", "p@ssword1", "p@ssw0rd1", "p@ssw0rd!",
		"123456", "1234567", "12345678", "123456789", "1234567890",
		"qwerty", "qwerty123", "qwerty1!", "qwertyuiop", "1q2w3e4r", "zaq12wsx",
		"letmein", "letmein1!", "welcome", "welcome1", "welcome1!", "welcome123",
		"admin", "admin123", "admin@123", "iloveyou", "iloveyou1!",
		"monkey", "dragon", "football", "baseball", "sunshine", "princess",
		"trustno1", "abc123", "abc@123", "111111", "000000", "changeme",
		"master", "shadow", "superman", "starwars", "whatever", "freedom",
		"asdfghjkl", "hello123", "summer2023", "winter2023",
	} {
		commonPasswords[p] = struct{}{}
	}
}

// IsCommonPassword reports whether password is on the blocklist, ignoring
// case.
func IsCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}
