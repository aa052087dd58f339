package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit panics when a dependency handler was not created yet.
// Arguments go in name/value pairs: CheckInit("pipeline", pipeline.Instance).
func CheckInit(pairs ...any) {
	if missing := Missing(pairs...); len(missing) != 0 {
		panic(fmt.Sprintf("dependencies not initialized: %s", strings.Join(missing, ", ")))
	}
}

// Missing returns the names whose values are nil, typed nil pointers included.
func Missing(pairs ...any) []string {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: first argument of pair must be string")
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
