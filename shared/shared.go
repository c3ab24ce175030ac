package shared

import (
	"reflect"

	"hotel/shared/dto"
)

// TransformFields converts the set fields of a struct into a column -> value map for an update.
// Zero values and nil pointers are skipped; set pointers are dereferenced.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return FilterAll(dto.Filter{
		Field:    fieldID,
		Value:    id,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

// FilterAll joins filters with AND.
func FilterAll(filters ...dto.Filter) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  make([]any, 0, len(filters)),
	}

	for _, filter := range filters {
		group.Filters = append(group.Filters, filter)
	}

	return group
}
