package shared_test

import (
	"testing"

	"carshare/shared"
	"carshare/shared/constant"
	"carshare/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "true", input: "true", want: boolPtr(true)},
		{name: "false", input: "false", want: boolPtr(false)},
		{name: "empty returns nil", input: "", want: nil},
		{name: "garbage returns nil", input: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Status string `db:"status"`
		Reason string `db:"status_reason"`
		Skip   string `json:"skip"`
	}

	fields := shared.TransformFields(updateRequest{Status: "CONFIRMED"}, "host-1")

	if fields["status"] != "CONFIRMED" {
		t.Errorf("expected status to be set, got %v", fields["status"])
	}

	if _, ok := fields["status_reason"]; ok {
		t.Error("zero fields should be skipped")
	}

	if _, ok := fields["skip"]; ok {
		t.Error("fields without db tags should be skipped")
	}

	if fields[constant.FieldModifiedBy] != "host-1" {
		t.Errorf("expected modified_by to be stamped, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be stamped")
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking:get", "abc", "def")

	if key != "booking:get:abc:def" {
		t.Errorf("unexpected cache key: %s", key)
	}
}

func TestBuildCacheKeyWithQueryIsStable(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "car_id", Operator: dto.FilterOperatorEq, Value: "car-1"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected identical keys for identical queries, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if other == first {
		t.Error("expected different key for a different page")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("booking-1", "id", "bookings")

	clause, args := group.GetWhereClause()

	if clause != "(bookings.id = :id)" {
		t.Errorf("unexpected clause: %q", clause)
	}

	if args["id"] != "booking-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
