package storefront

import (
	"errors"
	"fmt"
)

// Storefront API errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrGraphQL              = errors.New("graphql error")
	ErrResponseTooLarge     = errors.New("response body too large")
	ErrCircuitOpen          = errors.New("storefront circuit breaker open")
)

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d: %s", ErrUnexpectedStatusCode, e.StatusCode, e.Body)
}

// Unwrap makes errors.Is(err, ErrUnexpectedStatusCode) hold.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatusCode
}

func newStatusError(code int, body []byte) *StatusError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &StatusError{StatusCode: code, Body: string(body)}
}

// GraphQLError is one entry of a GraphQL response's "errors" array.
type GraphQLError struct {
	Message   string `json:"message"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}
