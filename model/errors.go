package model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidRepository is returned when the owner or the name of a repository is missing
var ErrInvalidRepository = errors.New("invalid repository")

// APIFailure is returned when github answers with any status other than 200
// only the status code is kept, the response body is discarded
type APIFailure struct {
	StatusCode int
}

func (e *APIFailure) Error() string {
	return fmt.Sprintf("github api responded with status %d", e.StatusCode)
}

// TransportError is returned when no http response was received (dns, connection, tls, timeout, cancellation)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "unable to reach github: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when github answered 200 with a body that is not a language breakdown
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "malformed languages response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError converts a fetch error to the http status and payload returned by our API
func NewAPIError(errReason error) (int, APIError) {
	var apiFailure *APIFailure
	var transportErr *TransportError
	var parseErr *ParseError

	switch {
	case errors.Is(errReason, ErrInvalidRepository):
		return http.StatusBadRequest, APIError{
			Code:    "INVALID_REPOSITORY",
			Message: errReason.Error(),
		}

	case errors.As(errReason, &apiFailure):
		switch apiFailure.StatusCode {
		case http.StatusNotFound:
			return http.StatusNotFound, APIError{
				Code:    "REPOSITORY_NOT_FOUND",
				Message: "repository not found on github or not publicly accessible",
			}

		case http.StatusForbidden, http.StatusTooManyRequests:
			return http.StatusTooManyRequests, APIError{
				Code:    "RATE_LIMIT_REACHED",
				Message: "github rate limit reached. wait few minutes and try again",
			}

		default:
			return http.StatusBadGateway, APIError{
				Code:    "GITHUB_API_ERROR",
				Message: errReason.Error(),
			}
		}

	case errors.As(errReason, &transportErr):
		status := http.StatusBadGateway
		if errors.Is(transportErr, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}

		return status, APIError{
			Code:    "GITHUB_UNREACHABLE",
			Message: "unable to reach github. try again later",
		}

	case errors.As(errReason, &parseErr):
		return http.StatusBadGateway, APIError{
			Code:    "MALFORMED_RESPONSE",
			Message: "github returned an unexpected languages payload",
		}
	}

	return http.StatusInternalServerError, APIError{
		Code:    "GENERIC_ERROR",
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}
