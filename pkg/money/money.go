// Package money formatea importes monetarios para presentación (CLI,
// respuestas HTTP legibles). Los cálculos nunca pasan por aquí; el motor
// trabaja siempre sobre decimal.Decimal.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el importe con separador de miles y dos decimales,
// precedido del código ISO de la moneda: "AED 1,050.00".
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		// Código desconocido: se muestra tal cual, sin símbolo de unidad.
		return printer.Sprintf("%s %.2f", code, amount.InexactFloat64())
	}
	return printer.Sprintf("%v %.2f", unit, amount.InexactFloat64())
}

// FormatPlain devuelve el importe sin moneda: "1,050.00".
func FormatPlain(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f", amount.InexactFloat64())
}
