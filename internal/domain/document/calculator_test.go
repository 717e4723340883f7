package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del calculador. Los montos esperados están calculados a mano con el
// contrato de redondeo por paso a 2 decimales:
//
//	amount   = round(quantity × rate)
//	vat      = round(amount × vatRate / 100)
//	subtotal = Σ amount;  total = subtotal − descuento + cargos + IVA
//
// Documento base: 3 × 100.00 y 2 × 300.00, ambas líneas al 5% de IVA
//	→ subtotal 900.00, IVA 45.00, total 945.00
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLine(name, qty, rate, vat string) entity.LineItem {
	return entity.LineItem{
		ID:          "line-" + name,
		ProductName: name,
		Quantity:    dec(qty),
		Rate:        dec(rate),
		VatRate:     dec(vat),
	}
}

func baseDoc() entity.DocumentState {
	return entity.DocumentState{
		Header: entity.Header{
			Date:         "2026-03-15",
			Currency:     "AED",
			ExchangeRate: decimal.NewFromInt(1),
		},
		Lines: []entity.LineItem{
			testLine("tubo", "3", "100.00", "5"),
			testLine("lamina", "2", "300.00", "5"),
		},
		Discount: entity.Discount{Type: entity.DiscountTypeAmount},
		Meta:     entity.Meta{Status: entity.StatusDraft},
	}
}

func TestCalculate_DocumentoBase(t *testing.T) {
	res := document.Calculate(baseDoc(), document.DefaultOptions())

	require.Len(t, res.Lines, 2)
	assert.True(t, dec("300.00").Equal(res.Lines[0].Amount), "línea 1: 3 × 100.00")
	assert.True(t, dec("600.00").Equal(res.Lines[1].Amount), "línea 2: 2 × 300.00")
	assert.True(t, dec("15.00").Equal(res.Lines[0].VatAmount))
	assert.True(t, dec("30.00").Equal(res.Lines[1].VatAmount))

	assert.True(t, dec("900.00").Equal(res.Subtotal))
	assert.True(t, dec("45.00").Equal(res.VatAmount))
	assert.True(t, dec("945.00").Equal(res.Total))
	assert.True(t, dec("945.00").Equal(res.TotalAed), "tasa de cambio 1")
}

// El descuento de documento al 10% se reparte entre líneas según su
// participación en el subtotal y el IVA se vuelve a derivar por línea:
// 300→270 (IVA 13.50) y 600→540 (IVA 27.00).
func TestCalculate_DescuentoPorcentual(t *testing.T) {
	doc := baseDoc()
	doc.Discount = entity.Discount{Type: entity.DiscountTypePercent, Value: dec("10")}

	res := document.Calculate(doc, document.DefaultOptions())

	assert.True(t, dec("900.00").Equal(res.Subtotal), "el subtotal no incluye el descuento de documento")
	assert.True(t, dec("90.00").Equal(res.DiscountAmount))
	assert.True(t, dec("40.50").Equal(res.VatAmount), "IVA reasignado sobre netos descontados")
	assert.True(t, dec("850.50").Equal(res.Total))
}

func TestCalculate_CargoFlete(t *testing.T) {
	doc := baseDoc()
	doc.Charges = []entity.Charge{{Key: entity.ChargeFreight, Label: "Freight", Amount: dec("100.00"), VatRate: dec("5")}}

	res := document.Calculate(doc, document.DefaultOptions())

	require.Len(t, res.Charges, 1)
	assert.True(t, dec("100.00").Equal(res.ChargesTotal))
	assert.True(t, dec("5.00").Equal(res.ChargesVat))
	assert.True(t, dec("50.00").Equal(res.VatAmount), "IVA de líneas + IVA de cargos")
	assert.True(t, dec("1050.00").Equal(res.Total))
}

// Con tasas de IVA mixtas el descuento no puede escalar el IVA total: cada
// línea recibe su parte del descuento y vuelve a derivar IVA con su propia
// tasa. 100.00 al 5% y 50.00 al 0%, descuento 30.00 → asignado 20.00/10.00,
// netos 80.00/40.00, IVA 4.00.
func TestCalculate_ReasignacionTasasMixtas(t *testing.T) {
	doc := baseDoc()
	doc.Lines = []entity.LineItem{
		testLine("gravado", "1", "100.00", "5"),
		testLine("exento", "1", "50.00", "0"),
	}
	doc.Discount = entity.Discount{Type: entity.DiscountTypeAmount, Value: dec("30.00")}

	res := document.Calculate(doc, document.DefaultOptions())

	assert.True(t, dec("150.00").Equal(res.Subtotal))
	assert.True(t, dec("30.00").Equal(res.DiscountAmount))
	assert.True(t, dec("4.00").Equal(res.VatAmount))
	assert.True(t, dec("124.00").Equal(res.Total))
}

// Un descuento de monto mayor que el subtotal se acota al subtotal; los
// netos quedan en cero y el IVA de líneas desaparece.
func TestCalculate_DescuentoAcotadoAlSubtotal(t *testing.T) {
	doc := baseDoc()
	doc.Discount = entity.Discount{Type: entity.DiscountTypeAmount, Value: dec("2000.00")}

	res := document.Calculate(doc, document.DefaultOptions())

	assert.True(t, dec("900.00").Equal(res.DiscountAmount), "acotado al subtotal")
	assert.True(t, res.VatAmount.IsZero())
	assert.True(t, res.Total.IsZero())
}

func TestCalculate_DescuentoDeLinea(t *testing.T) {
	doc := baseDoc()
	doc.Lines = []entity.LineItem{testLine("tubo", "1", "200.00", "5")}
	doc.Lines[0].DiscountPercent = dec("10")

	res := document.Calculate(doc, document.DefaultOptions())

	require.Len(t, res.Lines, 1)
	assert.True(t, dec("20.00").Equal(res.Lines[0].DiscountAmount))
	assert.True(t, dec("180.00").Equal(res.Lines[0].Amount), "el descuento de línea se resta antes del IVA")
	assert.True(t, dec("9.00").Equal(res.Lines[0].VatAmount))
	assert.True(t, dec("189.00").Equal(res.Total))
}

// El redondeo por paso es parte del contrato: 1.5 × 10.01 = 15.015 se
// redondea a 15.02 antes de seguir.
func TestCalculate_RedondeoPorPaso(t *testing.T) {
	doc := baseDoc()
	doc.Lines = []entity.LineItem{testLine("fraccion", "1.5", "10.01", "0")}

	res := document.Calculate(doc, document.DefaultOptions())

	assert.True(t, dec("15.02").Equal(res.Lines[0].Amount))
	assert.True(t, dec("15.02").Equal(res.Subtotal))
}

// En modo invoice-level las líneas conservan precisión completa y el
// redondeo ocurre en los totales: tres líneas de 10.005 suman 30.015 → 30.02,
// mientras que por línea cada una redondea a 10.01 → 30.03.
func TestCalculate_ModosDeRedondeoDifieren(t *testing.T) {
	doc := baseDoc()
	doc.Lines = []entity.LineItem{
		testLine("a", "1", "10.005", "0"),
		testLine("b", "1", "10.005", "0"),
		testLine("c", "1", "10.005", "0"),
	}

	perLine := document.Calculate(doc, document.DefaultOptions())
	assert.True(t, dec("30.03").Equal(perLine.Subtotal))

	opts := document.DefaultOptions()
	opts.RoundingMode = document.RoundingInvoiceLevel
	invoiceLevel := document.Calculate(doc, opts)
	assert.True(t, dec("30.02").Equal(invoiceLevel.Subtotal))
}

func TestCalculate_TotalAed(t *testing.T) {
	doc := baseDoc()
	doc.Header.Currency = "USD"
	doc.Header.ExchangeRate = dec("3.6725")

	res := document.Calculate(doc, document.DefaultOptions())

	assert.True(t, dec("945.00").Equal(res.Total))
	assert.True(t, dec("3470.51").Equal(res.TotalAed), "945.00 × 3.6725 = 3470.5125 → 3470.51")
}

// Los cargos con monto no positivo se ignoran aunque lleguen en el estado.
func TestCalculate_IgnoraCargosNoPositivos(t *testing.T) {
	doc := baseDoc()
	doc.Charges = []entity.Charge{
		{Key: entity.ChargePacking, Amount: decimal.Zero, VatRate: dec("5")},
		{Key: entity.ChargeFreight, Amount: dec("-10"), VatRate: dec("5")},
	}

	res := document.Calculate(doc, document.DefaultOptions())

	assert.Empty(t, res.Charges)
	assert.True(t, res.ChargesTotal.IsZero())
	assert.True(t, dec("945.00").Equal(res.Total))
}

// Determinismo: entradas idénticas producen resultados idénticos y el
// estado de entrada nunca se muta.
func TestCalculate_DeterministaYSinMutacion(t *testing.T) {
	doc := baseDoc()
	doc.Discount = entity.Discount{Type: entity.DiscountTypePercent, Value: dec("10")}
	before := doc.Clone()

	first := document.Calculate(doc, document.DefaultOptions())
	second := document.Calculate(doc, document.DefaultOptions())

	require.Equal(t, first, second)
	assert.Equal(t, before, doc, "Calculate no debe mutar el documento")
}

func TestApply_EscribeCifrasYTotales(t *testing.T) {
	doc := baseDoc()
	res := document.Calculate(doc, document.DefaultOptions())

	out := document.Apply(doc, res)

	assert.True(t, dec("300.00").Equal(out.Lines[0].Amount))
	assert.True(t, dec("15.00").Equal(out.Lines[0].VatAmount))
	assert.True(t, dec("945.00").Equal(out.Totals.Total))
	assert.True(t, doc.Lines[0].Amount.IsZero(), "Apply trabaja sobre una copia")
}
