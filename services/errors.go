package services

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyPersisted = errors.New("user already has a database id, update is not permitted")
)
