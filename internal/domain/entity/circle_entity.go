package entity

import (
	"errors"
	"fmt"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

var ErrCircleOwnerRequired = errors.New("circle owner is required")

// Circle groups users under an owner. It has no use cases yet, so it only
// supports construction and reads.
type Circle struct {
	id      valueobject.CircleID
	name    valueobject.CircleName
	owner   *User
	members []*User
}

func NewCircle(id valueobject.CircleID, name valueobject.CircleName, owner *User, members []*User) (*Circle, error) {
	if owner == nil {
		return nil, ErrCircleOwnerRequired
	}
	m := make([]*User, len(members))
	copy(m, members)
	return &Circle{id: id, name: name, owner: owner, members: m}, nil
}

func (c *Circle) ID() valueobject.CircleID {
	return c.id
}

func (c *Circle) Name() valueobject.CircleName {
	return c.name
}

func (c *Circle) Owner() *User {
	return c.owner
}

// Members returns the members in insertion order. The slice is a copy.
func (c *Circle) Members() []*User {
	m := make([]*User, len(c.members))
	copy(m, c.members)
	return m
}

func (c *Circle) Equals(other *Circle) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.id.Equals(other.id)
}

func (c *Circle) String() string {
	return fmt.Sprintf("ID: %s, Name: %s", c.id, c.name)
}
