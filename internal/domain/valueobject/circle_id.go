package valueobject

import "github.com/google/uuid"

// CircleID identifies a Circle.
type CircleID struct {
	value string
}

// NewCircleID wraps an existing circle id; an empty value is a validation error.
func NewCircleID(value string) (CircleID, error) {
	if value == "" {
		return CircleID{}, invalid("circle_id", "is required")
	}
	return CircleID{value: value}, nil
}

// NewRandomCircleID generates a fresh UUID-backed circle id.
func NewRandomCircleID() CircleID {
	return CircleID{value: uuid.NewString()}
}

// Value returns the raw id.
func (id CircleID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id CircleID) String() string {
	return id.value
}

// Equals reports whether both ids hold the same value.
func (id CircleID) Equals(other CircleID) bool {
	return id.value == other.value
}
