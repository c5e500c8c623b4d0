package application

import "errors"

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
)
