package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeJSON decodes the request body into dest and, if dest implements
// Validator, runs Validate(). It returns the validation messages (nil when
// valid) and a decode error separately so callers can shape the error body
// for their surface.
func DecodeJSON(r *http.Request, dest any) (invalid []string, err error) {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return nil, err
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			return errs, nil
		}
	}
	return nil, nil
}

// DecodeAndValidate decodes the request body into dest and writes a 400
// public-surface error on decode or validation failure, returning false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	invalid, err := DecodeJSON(r, dest)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if len(invalid) > 0 {
		WriteError(w, http.StatusBadRequest, strings.Join(invalid, "; "))
		return false
	}
	return true
}
