package model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryIdentityValidate(t *testing.T) {
	tests := []struct {
		name        string
		identity    RepositoryIdentity
		expectError bool
	}{
		{name: "Valid identity", identity: NewRepositoryIdentity("octocat", "hello-world")},
		{name: "Missing owner", identity: NewRepositoryIdentity("", "hello-world"), expectError: true},
		{name: "Blank name", identity: NewRepositoryIdentity("octocat", "  "), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidRepository)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRepositoryLanguages(t *testing.T) {
	identity := NewRepositoryIdentity("octocat", "hello-world")
	languages := LanguageBreakdown{"Python": 1234, "JavaScript": 56}

	assert.Equal(t, RepositoryLanguages{
		FullName:   "octocat/hello-world",
		Owner:      "octocat",
		Repository: "hello-world",
		Languages:  languages,
	}, NewRepositoryLanguages(identity, languages))
	assert.Equal(t, 1290, languages.TotalBytes())
}

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Invalid repository",
			err:            NewRepositoryIdentity("", "repo").Validate(),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REPOSITORY",
		},
		{
			name:           "Repository not found",
			err:            &APIFailure{StatusCode: http.StatusNotFound},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "REPOSITORY_NOT_FOUND",
		},
		{
			name:           "Rate limited",
			err:            fmt.Errorf("fetch: %w", &APIFailure{StatusCode: http.StatusForbidden}),
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "RATE_LIMIT_REACHED",
		},
		{
			name:           "Other github status",
			err:            &APIFailure{StatusCode: http.StatusInternalServerError},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "GITHUB_API_ERROR",
		},
		{
			name:           "Transport timeout",
			err:            &TransportError{Err: context.DeadlineExceeded},
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   "GITHUB_UNREACHABLE",
		},
		{
			name:           "Connection refused",
			err:            &TransportError{Err: errors.New("connection refused")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "GITHUB_UNREACHABLE",
		},
		{
			name:           "Malformed body",
			err:            &ParseError{Err: errors.New("unexpected EOF")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "MALFORMED_RESPONSE",
		},
		{
			name:           "Unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "GENERIC_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiError := NewAPIError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, apiError.Code)
			assert.NotEmpty(t, apiError.Message)
		})
	}
}

func TestAPIFailureMessage(t *testing.T) {
	assert.EqualError(t, &APIFailure{StatusCode: 404}, "github api responded with status 404")
}

func TestMainLanguageQueryThreshold(t *testing.T) {
	threshold := 0.5

	assert.Equal(t, DefaultPopularityThreshold, MainLanguageQuery{}.ThresholdOrDefault())
	assert.Equal(t, 0.5, MainLanguageQuery{Threshold: &threshold}.ThresholdOrDefault())
}
