package identity

// SignUpRequest регистрация пользователя по email и паролю
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Account созданная учетная запись
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// signUpResponse ответ провайдера; id пользователя приходит в user или в session.user
type signUpResponse struct {
	User    *Account `json:"user"`
	Session *struct {
		User *Account `json:"user"`
	} `json:"session"`
}

func (r *signUpResponse) account() *Account {
	if r.User != nil && r.User.ID != "" {
		return r.User
	}
	if r.Session != nil && r.Session.User != nil && r.Session.User.ID != "" {
		return r.Session.User
	}
	return nil
}

// ErrorResponse модель ошибки провайдера
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
