package krakenspot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoCredentials       = errors.New("client has no api credentials; private endpoints unavailable")
	ErrInvalidSecret       = errors.New("api secret is not valid base64")
	ErrTransport           = errors.New("transport error")
	ErrTimeout             = errors.New("request timed out")
	ErrUnexpectedJSONInput = errors.New("unexpected json input")
	ErrTooManyArgs         = errors.New("too many variadic args")
	ErrInvalidArg          = errors.New("invalid argument")

	// ErrInvalidNonce matches an *APIError whose error list contains Kraken's
	// "EAPI:Invalid nonce" message.
	ErrInvalidNonce = errors.New("EAPI:Invalid nonce")

	errNoInternetConnection = errors.New("no internet connection")
)

// APIError is returned when a response carries no "result" member, or when
// the server answered with a non-JSON body. Errors holds Kraken's error array
// verbatim (flattened one level) and Raw the untouched response body.
type APIError struct {
	Endpoint   string
	StatusCode int
	Errors     []string
	Raw        string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultErrorMessage
	}
	if len(e.Errors) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s | endpoint: %s; status code: %d | %s", msg, e.Endpoint, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s | endpoint: %s; status code: %d", msg, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s | endpoint: %s; status code: %d; api error(s): %s", msg, e.Endpoint, e.StatusCode, strings.Join(e.Errors, ", "))
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	if target == ErrInvalidNonce {
		for _, msg := range e.Errors {
			if strings.HasPrefix(msg, ErrInvalidNonce.Error()) {
				return true
			}
		}
	}
	return false
}
