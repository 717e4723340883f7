package adapter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/adapter"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los adaptadores de formato externo. El formato de entrada no es
// de fiar: claves en camelCase o snake_case, números como string, bloques de
// detalle como objeto o string JSON. Todo lo malformado degrada a un valor
// seguro en lugar de abortar.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func invoiceWire() map[string]any {
	return map[string]any{
		"id":            float64(310),
		"invoiceNumber": "INV-0042",
		"invoiceDate":   "2026-03-15",
		"dueDate":       "2026-04-14",
		"customerId":    float64(42),
		"customerDetails": map[string]any{
			"name":  "Acme Steel",
			"trn":   "100123456700003",
			"email": "compras@acme.ae",
			"address": map[string]any{
				"city":    "Dubai",
				"country": "AE",
			},
		},
		"currency":     "AED",
		"exchangeRate": float64(1),
		"items": []any{
			map[string]any{
				"productId":   float64(7),
				"productName": "Tubo galvanizado",
				"quantity":    float64(3),
				"unitPrice":   float64(100),
				"vatRate":     float64(5),
			},
		},
		"freightCharges": float64(100),
		"packingCharges": float64(0),
		"discountType":   "percent",
		"discountValue":  float64(10),
		"status":         "DRAFT",
	}
}

func TestInvoiceToForm_MapeoCompleto(t *testing.T) {
	ad, err := adapter.ForType("invoice")
	require.NoError(t, err)

	doc := ad.ToForm(invoiceWire())

	assert.Equal(t, "INV-0042", doc.Header.DocNumber)
	assert.Equal(t, "2026-03-15", doc.Header.Date)
	require.NotNil(t, doc.Party.ID)
	assert.EqualValues(t, 42, *doc.Party.ID)
	assert.Equal(t, entity.PartyRoleCustomer, doc.Party.Role)
	assert.Equal(t, "100123456700003", doc.Party.TaxID)
	assert.Equal(t, "Dubai", doc.Party.Address.City)

	require.Len(t, doc.Lines, 1)
	assert.True(t, dec("3").Equal(doc.Lines[0].Quantity))
	assert.True(t, dec("100").Equal(doc.Lines[0].Rate))
	assert.NotEmpty(t, doc.Lines[0].ID, "identificador de línea nuevo")

	require.Len(t, doc.Charges, 1, "los cargos en cero se filtran")
	assert.Equal(t, entity.ChargeFreight, doc.Charges[0].Key)
	assert.True(t, dec("5").Equal(doc.Charges[0].VatRate), "tasa del descriptor de configuración")

	assert.Equal(t, entity.DiscountTypePercent, doc.Discount.Type)
	assert.Equal(t, entity.StatusDraft, doc.Meta.Status, "estado normalizado a minúsculas")
	require.NotNil(t, doc.Meta.ID)
	assert.EqualValues(t, 310, *doc.Meta.ID)
}

// Las claves camelCase tienen precedencia sobre snake_case cuando ambas
// vienen en la misma respuesta.
func TestToForm_PrecedenciaCamelCase(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(map[string]any{
		"invoiceNumber":  "INV-CAMEL",
		"invoice_number": "INV-SNAKE",
		"invoice_date":   "2026-01-31",
	})

	assert.Equal(t, "INV-CAMEL", doc.Header.DocNumber)
	assert.Equal(t, "2026-01-31", doc.Header.Date, "snake_case sirve de respaldo")
}

// El bloque de detalle puede llegar como string JSON; si está corrupto
// degrada a objeto vacío sin abortar la transformación.
func TestToForm_DetalleComoStringJSON(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(map[string]any{
		"customerDetails": `{"name":"Acme Steel","email":"compras@acme.ae"}`,
	})
	assert.Equal(t, "Acme Steel", doc.Party.Name)

	doc = ad.ToForm(map[string]any{"customerDetails": `{"name": truncated`})
	assert.Empty(t, doc.Party.Name, "JSON inválido degrada a objeto vacío")
}

// Números defensivos: string numérico se acepta, basura degrada a cero.
func TestToForm_NumerosDefensivos(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(map[string]any{
		"items": []any{
			map[string]any{"productName": "a", "quantity": "2.5", "unitPrice": " 99.90 "},
			map[string]any{"productName": "b", "quantity": "N/A", "unitPrice": nil},
		},
	})

	require.Len(t, doc.Lines, 2)
	assert.True(t, dec("2.5").Equal(doc.Lines[0].Quantity))
	assert.True(t, dec("99.90").Equal(doc.Lines[0].Rate))
	assert.True(t, doc.Lines[1].Quantity.IsZero())
	assert.True(t, doc.Lines[1].Rate.IsZero())
}

// La tasa de IVA por defecto solo aplica cuando la clave está ausente: un
// cero explícito se respeta.
func TestToForm_VatPorDefectoSoloSiAusente(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(map[string]any{
		"items": []any{
			map[string]any{"productName": "sin tasa"},
			map[string]any{"productName": "tasa cero", "vatRate": float64(0)},
		},
	})

	require.Len(t, doc.Lines, 2)
	assert.True(t, dec("5").Equal(doc.Lines[0].VatRate))
	assert.True(t, doc.Lines[1].VatRate.IsZero())
}

// La unidad ausente degrada a PCS; una unidad explícita se respeta.
func TestToForm_UnidadPorDefecto(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(map[string]any{
		"items": []any{
			map[string]any{"productName": "sin unidad"},
			map[string]any{"productName": "en metros", "unit": "MTR"},
		},
	})

	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "PCS", doc.Lines[0].Unit)
	assert.Equal(t, "MTR", doc.Lines[1].Unit)
}

func TestToForm_TasaDeCambioDegradaAUno(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	assert.True(t, decimal.NewFromInt(1).Equal(ad.ToForm(map[string]any{}).Header.ExchangeRate))
	assert.True(t, decimal.NewFromInt(1).Equal(ad.ToForm(map[string]any{"exchangeRate": float64(-2)}).Header.ExchangeRate))
	assert.True(t, dec("3.6725").Equal(ad.ToForm(map[string]any{"exchangeRate": "3.6725"}).Header.ExchangeRate))
}

// Ida y vuelta: el payload de salida conserva entradas y lleva las cifras
// derivadas del calculador.
func TestInvoiceRoundTrip(t *testing.T) {
	ad, _ := adapter.ForType("invoice")

	doc := ad.ToForm(invoiceWire())
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	payload, ok := ad.FromForm(doc).(dto.InvoicePayload)
	require.True(t, ok)

	assert.Equal(t, "INV-0042", payload.InvoiceNumber)
	assert.EqualValues(t, 42, *payload.CustomerID)
	require.Len(t, payload.Items, 1)
	assert.True(t, dec("300.00").Equal(payload.Items[0].Amount))
	assert.True(t, dec("100").Equal(payload.FreightCharges))
	assert.True(t, payload.PackingCharges.IsZero(), "cargo ausente viaja en cero")
	assert.Equal(t, "percent", payload.DiscountType)
	// subtotal 300, descuento 30, IVA líneas 13.50 + IVA flete 5, total 388.50
	assert.True(t, dec("388.50").Equal(payload.Total))
}

// Cada reconstrucción asigna identificadores de línea nuevos.
func TestToForm_IdentificadoresDeLineaNuevos(t *testing.T) {
	ad, _ := adapter.ForType("invoice")
	wire := invoiceWire()

	first := ad.ToForm(wire)
	second := ad.ToForm(wire)

	assert.NotEqual(t, first.Lines[0].ID, second.Lines[0].ID)
}

// La factura de proveedor acepta los sinónimos históricos vendorId y
// vendorDetails, y resuelve la categoría de IVA con respaldo en
// primaryVatCategory y por último STANDARD.
func TestVendorBillToForm_Sinonimos(t *testing.T) {
	ad, err := adapter.ForType("vendor_bill")
	require.NoError(t, err)

	doc := ad.ToForm(map[string]any{
		"billNumber":    "BILL-9",
		"vendorId":      float64(9),
		"vendorDetails": map[string]any{"name": "Proveedor Gulf"},
	})

	require.NotNil(t, doc.Party.ID)
	assert.EqualValues(t, 9, *doc.Party.ID)
	assert.Equal(t, entity.PartyRoleVendor, doc.Party.Role)
	assert.Equal(t, "Proveedor Gulf", doc.Party.Name)
	assert.Equal(t, "STANDARD", doc.Header.VatCategory, "categoría por defecto")

	doc = ad.ToForm(map[string]any{"primaryVatCategory": "ZERO_RATED"})
	assert.Equal(t, "ZERO_RATED", doc.Header.VatCategory)
}

func TestForType_Desconocido(t *testing.T) {
	_, err := adapter.ForType("waybill")
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}
