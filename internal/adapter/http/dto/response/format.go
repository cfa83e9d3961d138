package response

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DisplayDateLayout   = "02/01/2006 15:04"
	DateNotAvailable    = "Data não disponível"
	ClientNotFoundLabel = "Cliente não encontrado"
	ItemNotFoundLabel   = "Item não encontrado"
)

// FormatDate renders t as dd/MM/yyyy HH:mm in loc.
func FormatDate(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return DateNotAvailable
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayDateLayout)
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as Brazilian currency, e.g. "R$ 1.234,50".
func FormatBRL(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}
