package utils

// Ptr returns a pointer to v. Test helper for optional-field literals.
func Ptr[T any](v T) *T {
	return &v
}
