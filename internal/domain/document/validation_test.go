package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del validador por capas. Las capas corren todas en orden fijo y
// acumulan errores: una sola pasada presenta todos los problemas a la vez.
// ──────────────────────────────────────────────────────────────────────────────

// validDoc documento completo y calculado que pasa todas las capas con la
// configuración de factura.
func validDoc() entity.DocumentState {
	customerID := int64(42)
	doc := baseDoc()
	doc.Party = entity.Party{ID: &customerID, Role: "customer", Name: "Acme Steel", Email: "compras@acme.ae"}
	return document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))
}

func codes(res document.ValidationResult) []string {
	out := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		out = append(out, e.Code)
	}
	return out
}

func TestValidate_DocumentoValido(t *testing.T) {
	cfg := formconfig.Invoice()
	res := document.Validate(validDoc(), cfg, cfg.Overrides.CustomValidators)

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

// Una sola pasada reporta los problemas de todas las capas a la vez, sin
// cortocircuito entre capas.
func TestValidate_AcumulaErroresDeVariasCapas(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Header.Date = ""           // cabecera: REQUIRED
	doc.Party.ID = nil             // contraparte: PARTY_REQUIRED
	doc.Party.Email = "sin-arroba" // contraparte: INVALID_EMAIL
	doc.Lines[0].ProductName = ""  // línea: LINE_PRODUCT_REQUIRED

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	require.False(t, res.IsValid)
	got := codes(res)
	assert.Contains(t, got, document.CodeRequired)
	assert.Contains(t, got, document.CodePartyRequired)
	assert.Contains(t, got, document.CodeInvalidEmail)
	assert.Contains(t, got, document.CodeLineProductRequired)
	assert.GreaterOrEqual(t, len(res.Errors), 4)
}

func TestValidate_FechaInvalida(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Header.Date = "15/03/2026"

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	assert.Contains(t, codes(res), document.CodeInvalidDate)
}

func TestValidate_FechaRFC3339EsValida(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Header.Date = "2026-03-15T10:30:00Z"

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	assert.True(t, res.IsValid)
}

// Cero líneas es un único error de negocio; no se reporta además un error
// por cada columna de la línea inexistente.
func TestValidate_SinLineas(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Lines = []entity.LineItem{}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	got := codes(res)
	assert.Contains(t, got, document.CodeNoLineItems)
	assert.Contains(t, got, document.CodeZeroTotal, "sin líneas el total es cero")
	require.Len(t, got, 2)
}

func TestValidate_VencimientoAnteriorALaFecha(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Header.DueDate = "2026-03-01"

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	require.False(t, res.IsValid)
	assert.Contains(t, codes(res), document.CodeDueDateBeforeDate)
	assert.Equal(t, formconfig.LevelCrossField, res.Errors[0].Level)
}

func TestValidate_DescuentoPorcentualFueraDeRango(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Discount = entity.Discount{Type: entity.DiscountTypePercent, Value: decimal.NewFromInt(150)}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	assert.Contains(t, codes(res), document.CodeInvalidDiscountPercent)
}

// El calculador acota el descuento al subtotal, pero el rechazo autoritativo
// del monto excesivo es del validador.
func TestValidate_DescuentoMayorQueSubtotal(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Discount = entity.Discount{Type: entity.DiscountTypeAmount, Value: decimal.NewFromInt(2000)}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	got := codes(res)
	assert.Contains(t, got, document.CodeDiscountExceedsSubtotal)
	assert.Contains(t, got, document.CodeZeroTotal, "descuento acotado deja el total en cero")
}

func TestValidate_TasaDeCambioNoPositiva(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Header.ExchangeRate = decimal.Zero

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	got := codes(res)
	assert.Contains(t, got, document.CodeInvalidExchangeRate)
	assert.Contains(t, got, document.CodeRequired, "el campo de cabecera también queda vacío")
}

func TestValidate_DocumentoBloqueado(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Meta.Status = entity.StatusIssued
	doc.Meta.IsLocked = true

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	require.False(t, res.IsValid)
	assert.Contains(t, codes(res), document.CodeDocumentLocked)
}

// La orden de compra no habilita descuento de documento ni fecha de
// vencimiento: esos problemas no se reportan aunque los datos los tengan.
func TestValidate_CapasDeshabilitadasPorConfiguracion(t *testing.T) {
	cfg := formconfig.PurchaseOrder()
	cfg.Features.EnableDueDate = false
	supplierID := int64(7)
	doc := baseDoc()
	doc.Party = entity.Party{ID: &supplierID, Role: "vendor", Name: "Proveedor"}
	doc.Header.DueDate = "2020-01-01"
	doc.Discount = entity.Discount{Type: entity.DiscountTypePercent, Value: decimal.NewFromInt(500)}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	got := codes(res)
	assert.NotContains(t, got, document.CodeDueDateBeforeDate)
	assert.NotContains(t, got, document.CodeInvalidDiscountPercent)
}

// El validador personalizado de facturas de proveedor rechaza líneas con IVA
// en categoría exenta.
func TestValidate_ValidadorPersonalizadoVendorBill(t *testing.T) {
	cfg := formconfig.VendorBill()
	vendorID := int64(9)
	doc := baseDoc()
	doc.Party = entity.Party{ID: &vendorID, Role: "vendor", Name: "Proveedor"}
	doc.Header.VendorInvoiceNumber = "VB-991"
	doc.Header.VatCategory = "ZERO_RATED"
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.Validate(doc, cfg, cfg.Overrides.CustomValidators)

	require.False(t, res.IsValid)
	assert.Contains(t, codes(res), "VAT_CATEGORY_RATE_MISMATCH")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de ciclo de vida: guardar borrador y aprobar.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanSaveDraft_SoloFechaYContraparte(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Lines = []entity.LineItem{} // un borrador puede no tener líneas

	res := document.CanSaveDraft(doc, cfg)
	assert.True(t, res.IsValid)

	doc.Header.Date = ""
	doc.Party.ID = nil
	res = document.CanSaveDraft(doc, cfg)
	require.False(t, res.IsValid)
	assert.ElementsMatch(t, []string{document.CodeRequired, document.CodePartyRequired}, codes(res))
}

func TestCanApprove_SoloBorradores(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Meta.Status = entity.StatusApproved

	res := document.CanApprove(doc, cfg)

	require.False(t, res.IsValid)
	assert.Contains(t, codes(res), document.CodeInvalidStatusForApproval)
}

func TestCanApprove_NoDuplicaTotalCero(t *testing.T) {
	cfg := formconfig.Invoice()
	doc := validDoc()
	doc.Lines = []entity.LineItem{}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	res := document.CanApprove(doc, cfg)

	require.False(t, res.IsValid)
	var zeroTotal int
	for _, e := range res.Errors {
		if e.Code == document.CodeZeroTotal {
			zeroTotal++
		}
	}
	assert.Equal(t, 1, zeroTotal, "la capa de negocio ya reporta el total en cero")
}
