package mailer

import "time"

// Confirmation письмо о подтвержденной записи
type Confirmation struct {
	To          string
	ClientName  string
	ServiceName string
	StartAt     time.Time
	EndAt       time.Time
	AdvisorName string
	// Credentials временные данные для входа, если учетная запись создана при конвертации
	Credentials *Credentials
}

// Credentials данные для первого входа
type Credentials struct {
	Login    string
	Password string
}

// Config параметры отправителя
type Config struct {
	FromEmail string
	FromName  string
	AppURL    string
	Location  *time.Location
}

// view данные шаблонов
type view struct {
	ClientName   string
	ServiceName  string
	Date         string
	Start        string
	End          string
	AdvisorName  string
	Credentials  *Credentials
	To           string
	DashboardURL string
	SignInURL    string
}
