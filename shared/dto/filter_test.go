package dto_test

import (
	"mindwell/shared/dto"
	"testing"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "email",
				Value:    "pat@example.com",
				Operator: dto.FilterOperatorEq,
				Table:    "users",
			},
			expectedWhere: "users.email = :email",
			expectedArgs:  map[string]any{"email": "pat@example.com"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "scheduled",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "status = :status",
			expectedArgs:  map[string]any{"status": "scheduled"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "specialty",
				Value:    "anxiety",
				Operator: dto.FilterOperatorLike,
				Table:    "clinicians",
			},
			expectedWhere: "LOWER(clinicians.specialty) LIKE LOWER(:specialty) ",
			expectedArgs:  map[string]any{"specialty": "%anxiety%"},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
				Table:    "appointments",
			},
			expectedWhere: "appointments.status != :status",
			expectedArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "start_from",
				Field:    "start_at",
				Value:    "2025-07-01",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "appointments",
			},
			expectedWhere: "appointments.start_at >= :start_from",
			expectedArgs:  map[string]any{"start_from": "2025-07-01"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "last_login",
				Operator: dto.FilterIsNull,
				Table:    "users",
			},
			expectedWhere: "users.last_login IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "scheduled",
				Operator: "between",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_InSlice(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"scheduled", "confirmed"},
		Operator: dto.FilterOperatorIn,
		Table:    "appointments",
	}

	where, args := filter.GetWhereClause()

	expectedWhere := "appointments.status IN (:status_0, :status_1) "
	if where != expectedWhere {
		t.Errorf("expected where clause %q, got %q", expectedWhere, where)
	}

	if args["status_0"] != "scheduled" || args["status_1"] != "confirmed" {
		t.Errorf("expected slice values bound per index, got %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "patient_id",
				Value:    "patient-1",
				Operator: dto.FilterOperatorEq,
				Table:    "appointments",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    "status",
						Value:    "scheduled",
						Operator: dto.FilterOperatorEq,
						Table:    "appointments",
					},
					dto.Filter{
						ArgName:  "status_confirmed",
						Field:    "status",
						Value:    "confirmed",
						Operator: dto.FilterOperatorEq,
						Table:    "appointments",
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expectedWhere := "(appointments.patient_id = :patient_id AND (appointments.status = :status OR appointments.status = :status_confirmed))"
	if where != expectedWhere {
		t.Errorf("expected where clause %q, got %q", expectedWhere, where)
	}

	if args["patient_id"] != "patient-1" || args["status"] != "scheduled" || args["status_confirmed"] != "confirmed" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
