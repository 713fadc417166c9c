package mailer

import (
	"fmt"
	"time"
)

var weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// longDateES форматирует дату как "miércoles, 12 de marzo de 2025"
func longDateES(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdaysES[t.Weekday()], t.Day(), monthsES[t.Month()-1], t.Year())
}

// clockES форматирует время как "09:30"
func clockES(t time.Time) string {
	return t.Format("15:04")
}
