package valueobject

import (
	"fmt"
	"unicode/utf8"
)

// Inclusive bounds on the number of characters in a CircleName.
const (
	CircleNameMinLength = 3
	CircleNameMaxLength = 20
)

// CircleName is a circle display name of 3 to 20 characters.
type CircleName struct {
	value string
}

// NewCircleName validates the length in characters, not bytes.
func NewCircleName(value string) (CircleName, error) {
	n := utf8.RuneCountInString(value)
	if n < CircleNameMinLength {
		return CircleName{}, invalid("circle_name", fmt.Sprintf("must be at least %d characters long", CircleNameMinLength))
	}
	if n > CircleNameMaxLength {
		return CircleName{}, invalid("circle_name", fmt.Sprintf("must be at most %d characters long", CircleNameMaxLength))
	}
	return CircleName{value: value}, nil
}

// Value returns the name as given.
func (n CircleName) Value() string {
	return n.value
}

// String implements fmt.Stringer.
func (n CircleName) String() string {
	return n.value
}

// Equals compares names exactly, case included.
func (n CircleName) Equals(other CircleName) bool {
	return n.value == other.value
}
