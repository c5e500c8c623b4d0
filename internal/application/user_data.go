package application

import "github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"

// UserData is the read-only projection of a User handed out of the
// application layer. Callers cannot reach the entity's mutators through it.
type UserData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewUserData(u *entity.User) UserData {
	return UserData{ID: u.ID().Value(), Name: u.Name().Value()}
}
