package identity

import "errors"

var (
	// ErrEmailTaken возвращается, когда пользователь с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("identity client: email already registered")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
