package jedi

import (
	"fmt"
	"reflect"
	"strings"
)

// safeAssert performs safe type assertion at the type-erased extension
// boundary. A nil value maps to the zero value so extensions returning
// (nil, nil) stay harmless.
func safeAssert[T any](value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("type assertion error: expected %T, got %T (value: %v)", zero, value, value)
	}

	return typed, nil
}

// typeNameOf returns the display name of T, used as the default resolver name.
func typeNameOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func groupName(members ...string) string {
	return "group(" + strings.Join(members, ", ") + ")"
}
