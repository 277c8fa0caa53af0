package repository

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	// ErrLimitReached - в группе уже максимальное число участников
	ErrLimitReached = errors.New("member limit reached")
)
