package dto_test

import (
	"frontdesk/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "booking_id", Value: int64(4), Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.booking_id = :booking_id",
			wantArgs:  map[string]any{"booking_id": int64(4)},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "wanted_status", Field: "status", Value: "available", Operator: dto.FilterOperatorEq},
			wantWhere: "status = :wanted_status",
			wantArgs:  map[string]any{"wanted_status": "available"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "booking_status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
			wantWhere: "booking_status != :booking_status",
			wantArgs:  map[string]any{"booking_status": "cancelled"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "room_id", Value: []int64{12, 14}, Operator: dto.FilterOperatorIn, Table: "rooms"},
			wantWhere: "rooms.room_id IN (:room_id_0, :room_id_1) ",
			wantArgs:  map[string]any{"room_id_0": int64(12), "room_id_1": int64(14)},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "full_name", Value: "ayu", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(full_name) LIKE LOWER(:full_name) ",
			wantArgs:  map[string]any{"full_name": "%ayu%"},
		},
		{
			name:      "range bounds",
			filter:    dto.Filter{Field: "check_in", Value: "2024-05-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "check_in >= :check_in",
			wantArgs:  map[string]any{"check_in": "2024-05-01"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "total_order_cost", Operator: dto.FilterIsNull},
			wantWhere: "total_order_cost IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: int64(12), Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "active", Field: "booking_status", Value: "active", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "completed", Field: "booking_status", Value: "completed", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND (booking_status = :active OR booking_status = :completed))", where)
	assert.Equal(t, map[string]any{"room_id": int64(12), "active": "active", "completed": "completed"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_SkipsUnknownEntries(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			"guest_id = 1",
			dto.Filter{Field: "x", Operator: "between"},
			dto.Filter{Field: "guest_id", Value: int64(1), Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(guest_id = :guest_id)", where)
	assert.Equal(t, map[string]any{"guest_id": int64(1)}, args)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "guest_id", Value: int64(7), Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "booking_status", Value: "active", Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(guest_id = :guest_id AND booking_status = :booking_status)", where)
}
