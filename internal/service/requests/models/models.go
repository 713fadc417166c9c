package models

// SubmitRequest входные данные заявки на запись
type SubmitRequest struct {
	ServiceName string  `validate:"required,max=200"`
	Date        string  `validate:"required,datetime=2006-01-02"`
	StartMinute *int    `validate:"required,min=0,max=1439"`
	ClientName  string  `validate:"omitempty,max=200"`
	ClientEmail string  `validate:"omitempty,email,max=254"`
	ClientPhone string  `validate:"omitempty,max=40"`
	Message     *string `validate:"omitempty,max=2000"`
}

// Области видимости списка заявок
const (
	ScopeAll = "all"
	ScopeOwn = "own"
)

// ListRequest параметры списка заявок
type ListRequest struct {
	Scope    string
	ClientID *string
	Limit    int
}
