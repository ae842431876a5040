package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("not authorized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDeveloperNotFound  = errors.New("developer not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrLicenseNotFound    = errors.New("license not found")
	ErrAccountExists      = errors.New("account already exists")
)

// ValidationError carries field-level failures as a field → messages
// map, which is also the JSON body of a 400 response.
type ValidationError map[string][]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends a message for field.
func (v ValidationError) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
