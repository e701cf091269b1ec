package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

const (
	MinPasswordLength = 8
	MinNameLength     = 2
)

func Password(pw string) error {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return httperr.ErrBusiness("password_too_short")
	}
	return nil
}

// Name returns the trimmed name or name_too_short.
func Name(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", httperr.ErrBusiness("name_too_short")
	}
	return name, nil
}
