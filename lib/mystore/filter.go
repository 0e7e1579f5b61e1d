package mystore

import (
	"fmt"
	"reflect"
)

// matches evaluates equality filters against exported struct fields.
// Only "=" is supported outside of Cloud Datastore.
func matches(value any, filters []Filter) (bool, error) {
	v := reflect.Indirect(reflect.ValueOf(value))
	for _, f := range filters {
		if f.Compare != "=" {
			return false, fmt.Errorf("unsupported comparison %q on field %s", f.Compare, f.Field)
		}
		if v.Kind() != reflect.Struct {
			return false, fmt.Errorf("cannot filter on field %s of %T", f.Field, value)
		}
		field := v.FieldByName(f.Field)
		if !field.IsValid() {
			return false, fmt.Errorf("unknown field %s on %T", f.Field, value)
		}
		if !reflect.DeepEqual(field.Interface(), f.Value) {
			return false, nil
		}
	}
	return true, nil
}

func filter[T any](values []T, filters []Filter) ([]T, error) {
	result := make([]T, 0, len(values))
	for _, value := range values {
		ok, err := matches(value, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, value)
		}
	}
	return result, nil
}
