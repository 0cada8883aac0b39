package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/common"
)

// RegisterForm is the sign-up payload. ConfirmPassword is validated locally
// and never sent.
type RegisterForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Phone           string `json:"phone,omitempty"`
	Role            Role   `json:"role"`
}

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?:{}|<>]`)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

// Validate checks every field and returns all problems joined together.
// With strictEmail only @gmail.com addresses are accepted.
func (f RegisterForm) Validate(strictEmail bool) error {
	var errs []error

	name := strings.TrimSpace(f.Name)
	switch {
	case len(name) < 3:
		errs = append(errs, invalid("name must be at least 3 characters"))
	case !nameRe.MatchString(name):
		errs = append(errs, invalid("name contains invalid characters"))
	}

	switch {
	case !emailRe.MatchString(f.Email):
		errs = append(errs, invalid("please enter a valid email address"))
	case strictEmail && !strings.HasSuffix(strings.ToLower(f.Email), "@gmail.com"):
		errs = append(errs, invalid("please use a Gmail address (example@gmail.com)"))
	}

	pw := f.Password
	switch {
	case len(pw) < 8:
		errs = append(errs, invalid("password must be at least 8 characters"))
	case !upperRe.MatchString(pw):
		errs = append(errs, invalid("password must contain an uppercase letter"))
	case !lowerRe.MatchString(pw):
		errs = append(errs, invalid("password must contain a lowercase letter"))
	case !digitRe.MatchString(pw):
		errs = append(errs, invalid("password must contain a number"))
	case !specialRe.MatchString(pw):
		errs = append(errs, invalid("password must contain a special character"))
	}

	if f.ConfirmPassword != f.Password {
		errs = append(errs, invalid("passwords do not match"))
	}

	if !f.Role.Valid() || f.Role == RoleAdmin {
		errs = append(errs, invalid("role must be one of FARMER, DISTRIBUTOR, BUYER"))
	}

	return errors.Join(errs...)
}
