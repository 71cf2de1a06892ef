// Package apierror defines the error type returned for every remote or
// transport failure of the Chatlytics API client.
//
// Callers discriminate failures with errors.As and a switch on Kind:
//
//	var apiErr *apierror.Error
//	if errors.As(err, &apiErr) {
//		switch apiErr.Kind {
//		case apierror.KindAuthentication:
//			// rotate the key
//		case apierror.KindTimeout, apierror.KindServer:
//			// safe to try again later
//		}
//	}
package apierror

import (
	"fmt"
	"net/http"
)

// Kind identifies the failure mode of a request.
type Kind string

const (
	// KindAuthentication is an HTTP 401, the API key was rejected.
	KindAuthentication Kind = "authentication"
	// KindValidation is an HTTP 400, the server refused the request body.
	KindValidation Kind = "validation"
	// KindNotFound is an HTTP 404, the referenced resource does not exist.
	KindNotFound Kind = "not_found"
	// KindServer is any HTTP 5xx response.
	KindServer Kind = "server"
	// KindConnection means no response was received at all.
	KindConnection Kind = "connection"
	// KindTimeout means the request exceeded the configured timeout.
	KindTimeout Kind = "timeout"
	// KindAPI covers every other failure reported by the service,
	// including rate limits that survived the retry budget.
	KindAPI Kind = "api"
)

// Error describes a failed API call. Status is the HTTP status code when a
// response was received and zero otherwise. Payload holds the decoded
// response body when the server sent a JSON object.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Payload map[string]any
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("chatlytics: %s", e.Message)
	}
	return fmt.Sprintf("chatlytics: %s (status %d)", e.Message, e.Status)
}

// FromStatus classifies an HTTP response by status code. Codes without a
// dedicated kind fall back to KindAPI.
func FromStatus(status int, message string, payload map[string]any) *Error {
	kind := KindAPI
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuthentication
	case status == http.StatusBadRequest:
		kind = KindValidation
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 500 && status < 600:
		kind = KindServer
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Status:  status,
		Payload: payload,
	}
}

// Timeout reports a request that hit the configured timeout before a
// response arrived.
func Timeout(message string) *Error {
	return &Error{Kind: KindTimeout, Message: message}
}

// Connection reports a request that failed before any response was
// received, such as a DNS failure or a refused connection.
func Connection(message string) *Error {
	return &Error{Kind: KindConnection, Message: message}
}
