package valueobject

import (
	"fmt"
	"unicode/utf8"
)

// Inclusive bounds on the number of characters in a UserName.
const (
	UserNameMinLength = 3
	UserNameMaxLength = 19
)

// UserName is a display name of 3 to 19 characters.
type UserName struct {
	value string
}

// NewUserName validates the length in characters, not bytes.
func NewUserName(value string) (UserName, error) {
	n := utf8.RuneCountInString(value)
	if n < UserNameMinLength {
		return UserName{}, invalid("name", fmt.Sprintf("must be at least %d characters long", UserNameMinLength))
	}
	if n > UserNameMaxLength {
		return UserName{}, invalid("name", fmt.Sprintf("must be at most %d characters long", UserNameMaxLength))
	}
	return UserName{value: value}, nil
}

// Value returns the name as given.
func (n UserName) Value() string {
	return n.value
}

// String implements fmt.Stringer.
func (n UserName) String() string {
	return n.value
}

// Equals compares names exactly, case included.
func (n UserName) Equals(other UserName) bool {
	return n.value == other.value
}
