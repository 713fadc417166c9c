package mailer

import "errors"

var (
	// ErrNoRecipient возвращается, когда у письма нет адреса получателя
	ErrNoRecipient = errors.New("mailer: recipient is empty")

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("mailer: failed to render message")

	// ErrDelivery возвращается, когда SendGrid не принял письмо
	ErrDelivery = errors.New("mailer: delivery failed")
)
