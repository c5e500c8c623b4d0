package valueobject

import "github.com/google/uuid"

// UserID identifies a User. The zero value is not a valid id.
type UserID struct {
	value string
}

// NewUserID wraps an existing id; an empty value is a validation error.
func NewUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{}, invalid("id", "is required")
	}
	return UserID{value: value}, nil
}

// NewRandomUserID generates a fresh UUID-backed id.
func NewRandomUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// Value returns the raw id.
func (id UserID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id UserID) String() string {
	return id.value
}

// Equals reports whether both ids hold the same value.
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}
