package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	err := NewInvalidCredentials()

	converted := ToDomainError(err)
	require.NotNil(t, converted)
	assert.Equal(t, "INVALID_CREDENTIALS", converted.Code)
	assert.Equal(t, http.StatusUnauthorized, converted.HTTPStatus)
}

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	converted := ToDomainError(fmt.Errorf("load song: %w", pgx.ErrNoRows))
	require.NotNil(t, converted)
	assert.Equal(t, http.StatusNotFound, converted.HTTPStatus)
	assert.Equal(t, "Not found", converted.Message)
}

func TestToDomainErrorMapsUniqueViolationToConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	converted := ToDomainError(fmt.Errorf("insert user: %w", pgErr))
	require.NotNil(t, converted)
	assert.Equal(t, http.StatusConflict, converted.HTTPStatus)
	assert.Equal(t, "DUPLICATE_EMAIL", converted.Code)
	assert.Equal(t, "User with this email already exists", converted.Message)
}

func TestToDomainErrorHidesUnknownErrors(t *testing.T) {
	converted := ToDomainError(errors.New("dial tcp: connection refused"))
	require.NotNil(t, converted)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
	assert.Equal(t, "Internal server error", converted.Message)
}
