package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"carshare/shared/validator"
)

type createRequest struct {
	CarID     string `json:"car_id"     validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := `{"car_id":"7f9d2a44-5a5b-4a3c-9d6e-0f1b2c3d4e5f","start_date":"2026-03-01","end_date":"2026-03-04"}`

	var req createRequest
	err := validator.Validate(strings.NewReader(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01", req.StartDate)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	var req createRequest
	err := validator.Validate(strings.NewReader("{not json"), &req)

	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     createRequest
		wantErr string
	}{
		{
			name: "valid",
			req: createRequest{
				CarID:     "7f9d2a44-5a5b-4a3c-9d6e-0f1b2c3d4e5f",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-04",
			},
		},
		{
			name: "missing car id",
			req: createRequest{
				StartDate: "2026-03-01",
				EndDate:   "2026-03-04",
			},
			wantErr: "CarID is required",
		},
		{
			name: "timestamp instead of calendar date",
			req: createRequest{
				CarID:     "7f9d2a44-5a5b-4a3c-9d6e-0f1b2c3d4e5f",
				StartDate: "2026-03-01T10:00:00Z",
				EndDate:   "2026-03-04",
			},
			wantErr: "StartDate must be a calendar date in YYYY-MM-DD format",
		},
		{
			name: "not a date at all",
			req: createRequest{
				CarID:     "7f9d2a44-5a5b-4a3c-9d6e-0f1b2c3d4e5f",
				StartDate: "2026-03-01",
				EndDate:   "next tuesday",
			},
			wantErr: "EndDate must be a calendar date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-03-01", "dateonly"))
	assert.Error(t, validator.ValidateVar("03/01/2026", "dateonly"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
