package application

// Commands decouple the transport layer from the use case signatures.

type UserRegisterCommand struct {
	Name string
}

type UserGetCommand struct {
	ID string
}

// UserUpdateCommand carries a partial update; nil fields are left untouched.
type UserUpdateCommand struct {
	ID    string
	Name  *string
	Email *string
}

type UserDeleteCommand struct {
	ID string
}

type UserSearchCommand struct {
	Query string
	Size  int
}
