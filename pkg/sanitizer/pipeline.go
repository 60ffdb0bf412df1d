package sanitizer

// Apply runs value through transforms left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose captures transforms as a reusable cleaner, e.g. for binder fields
// or mail subjects.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
