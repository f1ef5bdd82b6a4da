package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"carshare/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "bad request", err: failure.BadRequestFromString("end date must be after start date"), wantCode: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("missing token"), wantCode: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("not your booking"), wantCode: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("car unavailable"), wantCode: http.StatusConflict},
		{name: "internal", err: failure.InternalError(errors.New("connection lost")), wantCode: http.StatusInternalServerError},
		{name: "plain error defaults to 500", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestGetCodeUnwrapsWrappedFailure(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", failure.Conflict("car unavailable"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestConflictWithDetails(t *testing.T) {
	details := []string{"2026-03-01..2026-03-04"}
	err := failure.ConflictWithDetails("car unavailable", details)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, details, failure.GetDetails(err))
	assert.Equal(t, "car unavailable", err.Error())
}

func TestGetDetailsNilForPlainErrors(t *testing.T) {
	assert.Nil(t, failure.GetDetails(errors.New("boom")))
	assert.Nil(t, failure.GetDetails(failure.NotFound("booking not found")))
}

func TestBadRequestNilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
