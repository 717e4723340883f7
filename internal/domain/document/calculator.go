// Package document contiene los dos motores puros del dominio: el calculador
// de totales (impuestos, descuentos, cargos) y el validador por capas. Ambos
// son funciones puras de (estado, configuración): no mutan sus entradas, son
// deterministas para entradas idénticas y se recalculan en cada cambio de
// estado. La configuración siempre llega como parámetro explícito, nunca
// desde estado global.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// Modos de redondeo del calculador.
const (
	RoundingPerLine      = "per-line"      // redondeo a precisión de moneda en cada paso intermedio
	RoundingInvoiceLevel = "invoice-level" // precisión completa por línea, redondeo en los totales
)

// CalculatorOptions parametriza el cálculo. Proviene de la configuración del
// tipo de documento; la jurisdicción observada aplica el descuento antes de
// calcular el IVA sobre la base descontada (DiscountBeforeVat).
type CalculatorOptions struct {
	VatInclusive      bool
	RoundingMode      string
	CurrencyPrecision int32
	DiscountBeforeVat bool
}

// DefaultOptions opciones estándar: redondeo por línea a 2 decimales,
// descuento antes de IVA, precios sin IVA incluido.
func DefaultOptions() CalculatorOptions {
	return CalculatorOptions{
		VatInclusive:      false,
		RoundingMode:      RoundingPerLine,
		CurrencyPrecision: 2,
		DiscountBeforeVat: true,
	}
}

// LineFigures cifras derivadas de una línea.
type LineFigures struct {
	ID             string
	Amount         decimal.Decimal // tras descuento de línea
	DiscountAmount decimal.Decimal
	VatAmount      decimal.Decimal
	NetAmount      decimal.Decimal

	vatRate decimal.Decimal // para la reasignación del descuento de documento
}

// ChargeFigures cifras derivadas de un cargo adicional.
type ChargeFigures struct {
	Key       string
	Amount    decimal.Decimal
	VatAmount decimal.Decimal
}

// CalculatorResult totales derivados del documento. Nunca se asignan a mano:
// cualquier cambio de estado vuelve a derivar el resultado completo.
type CalculatorResult struct {
	Lines   []LineFigures
	Charges []ChargeFigures

	Subtotal       decimal.Decimal // tras descuentos de línea, antes del de documento
	LineVat        decimal.Decimal // informativo: IVA de líneas antes del descuento de documento
	DiscountAmount decimal.Decimal // descuento a nivel de documento
	ChargesTotal   decimal.Decimal
	ChargesVat     decimal.Decimal
	VatAmount      decimal.Decimal // IVA de líneas (reasignado) + IVA de cargos
	Total          decimal.Decimal
	TotalAed       decimal.Decimal // Total convertido a moneda base vía tasa de cambio
}

var oneHundred = decimal.NewFromInt(100)

// Calculate deriva todas las cifras del documento. No muta el estado de
// entrada y produce un resultado bit a bit idéntico para entradas idénticas.
//
// Por línea: amount = round(quantity × rate); si hay descuento de línea,
// discountAmount = round(amount × pct / 100) y se resta; después
// vatAmount = round(amount × vatRate / 100). El redondeo a la precisión de
// moneda en cada paso intermedio es parte del contrato: dos cómputos
// equivalentes que redondeen en puntos distintos difieren legítimamente en
// la unidad mínima de moneda.
func Calculate(doc entity.DocumentState, opts CalculatorOptions) CalculatorResult {
	if opts.CurrencyPrecision == 0 {
		opts.CurrencyPrecision = 2
	}
	perLine := opts.RoundingMode != RoundingInvoiceLevel
	step := func(d decimal.Decimal) decimal.Decimal {
		if perLine {
			return d.Round(opts.CurrencyPrecision)
		}
		return d
	}

	res := CalculatorResult{}

	var subtotal, lineVat decimal.Decimal
	for _, line := range doc.Lines {
		amount := step(line.Quantity.Mul(line.Rate))
		gross := amount

		var lineDiscount decimal.Decimal
		if line.DiscountPercent.IsPositive() {
			lineDiscount = step(amount.Mul(line.DiscountPercent).Div(oneHundred))
			amount = amount.Sub(lineDiscount)
		}

		vatBase := amount
		if !opts.DiscountBeforeVat {
			vatBase = gross
		}
		vat := step(vatBase.Mul(line.VatRate).Div(oneHundred))

		net := amount
		if opts.VatInclusive {
			net = amount.Add(vat)
		}

		res.Lines = append(res.Lines, LineFigures{
			ID:             line.ID,
			Amount:         amount,
			DiscountAmount: lineDiscount,
			VatAmount:      vat,
			NetAmount:      net,
			vatRate:        line.VatRate,
		})
		subtotal = subtotal.Add(amount)
		lineVat = lineVat.Add(vat)
	}
	res.Subtotal = subtotal.Round(opts.CurrencyPrecision)
	res.LineVat = lineVat.Round(opts.CurrencyPrecision)

	// Descuento a nivel de documento. El rechazo autoritativo de valores
	// inválidos (porcentaje > 100, monto > subtotal) es responsabilidad del
	// validador; aquí solo se acota defensivamente.
	discountedLineVat := res.LineVat
	if doc.Discount.Value.IsPositive() && len(doc.Lines) > 0 && res.Subtotal.IsPositive() {
		switch doc.Discount.Type {
		case entity.DiscountTypePercent:
			res.DiscountAmount = res.Subtotal.Mul(doc.Discount.Value).Div(oneHundred).Round(opts.CurrencyPrecision)
		case entity.DiscountTypeAmount:
			res.DiscountAmount = doc.Discount.Value.Round(opts.CurrencyPrecision)
		}
		if res.DiscountAmount.GreaterThan(res.Subtotal) {
			res.DiscountAmount = res.Subtotal
		}
		discountedLineVat = reallocateDiscountVat(res.Lines, res.Subtotal, res.DiscountAmount, opts)
	}

	// Cargos: el editor elimina los cargos con monto no positivo antes de
	// que lleguen aquí; aun así se ignoran si aparecen.
	var chargesTotal, chargesVat decimal.Decimal
	for _, c := range doc.Charges {
		if !c.Amount.IsPositive() {
			continue
		}
		cvat := step(c.Amount.Mul(c.VatRate).Div(oneHundred))
		res.Charges = append(res.Charges, ChargeFigures{Key: c.Key, Amount: c.Amount, VatAmount: cvat})
		chargesTotal = chargesTotal.Add(c.Amount)
		chargesVat = chargesVat.Add(cvat)
	}
	res.ChargesTotal = chargesTotal.Round(opts.CurrencyPrecision)
	res.ChargesVat = chargesVat.Round(opts.CurrencyPrecision)

	res.VatAmount = discountedLineVat.Add(res.ChargesVat).Round(opts.CurrencyPrecision)
	res.Total = res.Subtotal.
		Sub(res.DiscountAmount).
		Add(res.ChargesTotal).
		Add(res.VatAmount).
		Round(opts.CurrencyPrecision)
	res.TotalAed = res.Total.Mul(doc.Header.ExchangeRate).Round(opts.CurrencyPrecision)

	return res
}

// reallocateDiscountVat recalcula el IVA de líneas tras aplicar el descuento
// de documento. El efecto del descuento sobre el IVA no es una proporción
// plana del IVA total: el descuento se reparte entre las líneas según su
// participación en el subtotal y el IVA de cada línea se vuelve a derivar
// con su propia tasa sobre el neto descontado. Las líneas pueden llevar
// tasas distintas, por lo que escalar el IVA total daría un resultado
// incorrecto.
func reallocateDiscountVat(lines []LineFigures, subtotal, discount decimal.Decimal, opts CalculatorOptions) decimal.Decimal {
	var sum decimal.Decimal
	for _, l := range lines {
		share := l.Amount.Div(subtotal)
		allocated := discount.Mul(share).Round(opts.CurrencyPrecision)
		net := l.Amount.Sub(allocated)
		if net.IsNegative() {
			net = decimal.Zero
		}
		sum = sum.Add(net.Mul(l.vatRate).Div(oneHundred).Round(opts.CurrencyPrecision))
	}
	return sum.Round(opts.CurrencyPrecision)
}

// Apply escribe las cifras derivadas sobre una copia del estado: montos por
// línea, IVA por cargo y totales. Es el único camino por el que las cifras
// derivadas entran al estado canónico.
func Apply(doc entity.DocumentState, res CalculatorResult) entity.DocumentState {
	out := doc.Clone()
	for i := range out.Lines {
		for _, lf := range res.Lines {
			if lf.ID == out.Lines[i].ID {
				out.Lines[i].Amount = lf.Amount
				out.Lines[i].DiscountAmount = lf.DiscountAmount
				out.Lines[i].VatAmount = lf.VatAmount
				break
			}
		}
	}
	for i := range out.Charges {
		for _, cf := range res.Charges {
			if cf.Key == out.Charges[i].Key {
				out.Charges[i].VatAmount = cf.VatAmount
				break
			}
		}
	}
	out.Totals = entity.Totals{
		Subtotal:       res.Subtotal,
		DiscountAmount: res.DiscountAmount,
		ChargesTotal:   res.ChargesTotal,
		ChargesVat:     res.ChargesVat,
		VatAmount:      res.VatAmount,
		Total:          res.Total,
		TotalAed:       res.TotalAed,
	}
	return out
}
