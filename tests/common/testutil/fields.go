//go:build unit || e2e

package testutil

// Field sets key on a request map, or deletes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ElemField applies Field to the index-th object of the list stored at listKey,
// e.g. one cart line inside "items".
func ElemField(listKey string, index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		list, ok := m[listKey].([]any)
		if !ok || index >= len(list) {
			return
		}
		if elem, ok := list[index].(map[string]any); ok {
			Field(key, value)(elem)
		}
	}
}
