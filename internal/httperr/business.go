package httperr

import "errors"

// BusinessError carries a stable, machine-readable code. Params feed the
// localized message template.
type BusinessError struct {
	Code   string
	Params map[string]any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrMissingField(field string) error {
	return BusinessError{
		Code:   "missing_field",
		Params: map[string]any{"Field": field},
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
