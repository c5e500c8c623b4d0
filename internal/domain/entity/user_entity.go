package entity

import (
	"fmt"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// User is the aggregate root for the user domain.
// Instances are obtained only through CreateUser or Reconstruct, and the name
// changes only through ChangeName, so a User always carries a valid UserName.
type User struct {
	id   valueobject.UserID
	name valueobject.UserName
}

func newUser(id valueobject.UserID, name valueobject.UserName) *User {
	return &User{id: id, name: name}
}

// CreateUser builds a brand new user with a freshly generated id.
func CreateUser(name string) (*User, error) {
	n, err := valueobject.NewUserName(name)
	if err != nil {
		return nil, err
	}
	return newUser(valueobject.NewRandomUserID(), n), nil
}

// Reconstruct rebuilds a user from persisted values.
func Reconstruct(id, name string) (*User, error) {
	uid, err := valueobject.NewUserID(id)
	if err != nil {
		return nil, err
	}
	n, err := valueobject.NewUserName(name)
	if err != nil {
		return nil, err
	}
	return newUser(uid, n), nil
}

func (u *User) ID() valueobject.UserID {
	return u.id
}

func (u *User) Name() valueobject.UserName {
	return u.name
}

// ChangeName replaces the name; on error the current name is kept.
func (u *User) ChangeName(name string) error {
	n, err := valueobject.NewUserName(name)
	if err != nil {
		return err
	}
	u.name = n
	return nil
}

// ChangeMailAddress is accepted but not stored yet.
// TODO: persist the address once the users table carries an email column.
func (u *User) ChangeMailAddress(address string) {}

// Equals compares identity only; two users with the same id are the same user.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.id.Equals(other.id)
}

func (u *User) String() string {
	return fmt.Sprintf("ID: %s, Name: %s", u.id, u.name)
}
