package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	// ErrProfileExists возвращается при повторном создании профиля
	ErrProfileExists = errors.New("profile.repository: profile already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("profile.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("profile.repository: failed to execute query")
)
