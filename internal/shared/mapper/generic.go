// Package mapper holds small generic helpers for converting between layers.
package mapper

// MapSlice applies mapFunc to each element. A nil input yields an empty,
// non-nil slice so that JSON renders [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper that may fail, stopping at the first error.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// IndexBy builds a lookup map keyed by key(item).
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}
