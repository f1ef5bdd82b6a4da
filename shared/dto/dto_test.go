package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"carshare/shared/constant"
	"carshare/shared/dto"
	"carshare/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt to be %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "start_date",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_date", SortDir: "ASC"},
		},
		{
			name:           "empty request with defaults",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "invalid page and limit are ignored",
			queryParams: map[string]string{
				"page":  "zero",
				"limit": "-5",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "invalid sort dir is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := dto.QueryParams{}
			q.FromRequest(request, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArg    any
	}{
		{
			name:       "eq",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "PENDING", Table: "bookings"},
			wantClause: "bookings.status = :status",
			wantArg:    "PENDING",
		},
		{
			name:       "strict less for half-open overlap",
			filter:     dto.Filter{Field: "start_date", ArgName: "end_date_arg", Operator: dto.FilterOperatorLess, Value: "2026-03-04", Table: "bookings"},
			wantClause: "bookings.start_date < :end_date_arg",
			wantArg:    "2026-03-04",
		},
		{
			name:       "strict greater",
			filter:     dto.Filter{Field: "end_date", Operator: dto.FilterOperatorGreater, Value: "2026-03-01"},
			wantClause: "end_date > :end_date",
			wantArg:    "2026-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != 1 {
				t.Fatalf("expected one arg, got %d", len(args))
			}

			for _, got := range args {
				if got != tt.wantArg {
					t.Errorf("expected arg %v, got %v", tt.wantArg, got)
				}
			}
		})
	}
}

func TestFilter_GetWhereClauseIn(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Operator: dto.FilterOperatorIn,
		Value:    []string{"PENDING", "CONFIRMED", "ACTIVE"},
		Table:    "bookings",
	}

	clause, args := filter.GetWhereClause()

	if !strings.HasPrefix(clause, "bookings.status IN (") {
		t.Errorf("unexpected IN clause: %q", clause)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "car_id", Operator: dto.FilterOperatorEq, Value: "car-1"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", ArgName: "status_a", Operator: dto.FilterOperatorEq, Value: "PENDING"},
					dto.Filter{Field: "status", ArgName: "status_b", Operator: dto.FilterOperatorEq, Value: "ACTIVE"},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, "AND") || !strings.Contains(clause, "OR") {
		t.Errorf("expected nested group operators in clause, got %q", clause)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
