package viewmodel

import (
	"errors"

	"github.com/stackboard/stackboard/internal/client"
)

// ErrInvalidForm is returned by Submit when validation fails, locally or on
// the server; the per-field messages are in the view-model's Errors map.
var ErrInvalidForm = errors.New("form has validation errors")

// serverFieldErrors pulls per-field messages out of a server-side
// validation rejection, if that is what err is.
func serverFieldErrors(err error) map[string]string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.FieldErrors()
	}
	return nil
}
