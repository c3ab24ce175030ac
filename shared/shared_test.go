package shared_test

import (
	"reflect"
	"testing"

	"hotel/shared"
	"hotel/shared/dto"
)

func TestTransformFields(t *testing.T) {
	type staged struct {
		Price    *float64 `db:"price"`
		ImageURL *string  `db:"imageurl"`
		Note     string   `db:"note"`
		Ignored  string   `db:"-"`
		NoDBTag  string
	}

	price := 150.0
	zeroPrice := 0.0
	url := "https://cdn.example.com/rooms/101.png"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name:     "all fields set",
			data:     staged{Price: &price, ImageURL: &url, Note: "n", Ignored: "x", NoDBTag: "y"},
			expected: map[string]any{"price": 150.0, "imageurl": url, "note": "n"},
		},
		{
			name:     "only price set",
			data:     staged{Price: &price},
			expected: map[string]any{"price": 150.0},
		},
		{
			name:     "set pointer to zero value is kept",
			data:     staged{Price: &zeroPrice},
			expected: map[string]any{"price": 0.0},
		},
		{
			name:     "nothing set",
			data:     staged{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(12), "hotelID", "Hotel")

	expected := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "hotelID", Value: int64(12), Operator: dto.FilterOperatorEq, Table: "Hotel"},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	if where != "(Hotel.hotelID = :hotelID)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["hotelID"] != int64(12) {
		t.Errorf("expected bound id 12, got %v", args["hotelID"])
	}
}

func TestFilterAll(t *testing.T) {
	group := shared.FilterAll(
		dto.Filter{Field: "hotelID", Value: 1, Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "roomNumber", Value: 101, Operator: dto.FilterOperatorEq},
	)

	where, args := group.GetWhereClause()

	if where != "(hotelID = :hotelID AND roomNumber = :roomNumber)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
