// Package ptrutil has small helpers for the pointer-typed optional fields of
// the object models.
package ptrutil

// ToPtr returns a pointer to a copy of v, mostly for filling optional scalar
// fields from literals.
func ToPtr[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a shallow copy of *v, or nil for nil.
func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}

	clone := *v
	return &clone
}
