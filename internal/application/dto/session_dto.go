package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
)

// CreateSessionRequest apertura de sesión de edición. document es opcional;
// si viene, la sesión se siembra desde ese payload externo.
type CreateSessionRequest struct {
	DocumentType string         `json:"documentType"`
	Document     map[string]any `json:"document,omitempty"`
}

// SessionResponse estado de una sesión: el payload del documento en formato
// externo más el resultado de validación vigente.
type SessionResponse struct {
	ID           string                    `json:"id"`
	DocumentType string                    `json:"documentType"`
	IsDirty      bool                      `json:"isDirty"`
	Document     any                       `json:"document"`
	Validation   document.ValidationResult `json:"validation"`
}

// HeaderUpdateRequest actualización parcial de cabecera; los campos ausentes
// no cambian.
type HeaderUpdateRequest struct {
	DocNumber           *string          `json:"docNumber,omitempty"`
	Date                *string          `json:"date,omitempty"`
	DueDate             *string          `json:"dueDate,omitempty"`
	Currency            *string          `json:"currency,omitempty"`
	ExchangeRate        *decimal.Decimal `json:"exchangeRate,omitempty"`
	Reference           *string          `json:"reference,omitempty"`
	PaymentTerms        *string          `json:"paymentTerms,omitempty"`
	PlaceOfSupply       *string          `json:"placeOfSupply,omitempty"`
	VendorInvoiceNumber *string          `json:"vendorInvoiceNumber,omitempty"`
	VatCategory         *string          `json:"vatCategory,omitempty"`
	DeliveryTerms       *string          `json:"deliveryTerms,omitempty"`
}

// PartyUpdateRequest reemplazo de la contraparte seleccionada.
type PartyUpdateRequest struct {
	PartyDetails
	Role string `json:"role,omitempty"`
}

// LineRequest alta o actualización parcial de línea.
type LineRequest struct {
	ProductID       *int64           `json:"productId,omitempty"`
	ProductName     *string          `json:"productName,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Unit            *string          `json:"unit,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	VatRate         *decimal.Decimal `json:"vatRate,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discountPercent,omitempty"`
}

// RemoveLinesRequest eliminación atómica de varias líneas por índice.
type RemoveLinesRequest struct {
	Indices []int `json:"indices"`
}

// ReorderLinesRequest reordenamiento de una línea.
type ReorderLinesRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ChargeRequest fija el monto de un cargo adicional; cero lo elimina.
type ChargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// DiscountRequest descuento a nivel de documento.
type DiscountRequest struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// NotesRequest actualización parcial de notas.
type NotesRequest struct {
	CustomerNotes *string `json:"customerNotes,omitempty"`
	InternalNotes *string `json:"internalNotes,omitempty"`
	Terms         *string `json:"terms,omitempty"`
}
