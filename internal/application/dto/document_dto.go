// Package dto define los payloads de persistencia que producen los
// adaptadores. Las claves van en camelCase: la pasarela de API convierte a
// snake_case hacia el backend.
package dto

import "github.com/shopspring/decimal"

// AddressPayload dirección estructurada de la contraparte.
type AddressPayload struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// PartyDetails bloque de detalle de la contraparte. Viaja anidado en el
// payload; el backend lo almacena como JSON.
type PartyDetails struct {
	ID      *int64         `json:"id,omitempty"`
	Name    string         `json:"name,omitempty"`
	Company string         `json:"company,omitempty"`
	TRN     string         `json:"trn,omitempty"`
	Email   string         `json:"email,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Address AddressPayload `json:"address"`
}

// ItemPayload línea de detalle en el payload.
type ItemPayload struct {
	ProductID       *int64          `json:"productId,omitempty"`
	ProductName     string          `json:"productName"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit,omitempty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Amount          decimal.Decimal `json:"amount"`
	VatRate         decimal.Decimal `json:"vatRate"`
	VatAmount       decimal.Decimal `json:"vatAmount"`
	DiscountPercent decimal.Decimal `json:"discountPercent,omitempty"`
	DiscountAmount  decimal.Decimal `json:"discountAmount,omitempty"`
}

// TotalsPayload totales derivados, incluidos en el payload para que el
// backend pueda verificarlos contra su propio cálculo.
type TotalsPayload struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ChargesTotal   decimal.Decimal `json:"chargesTotal"`
	ChargesVat     decimal.Decimal `json:"chargesVat"`
	VatAmount      decimal.Decimal `json:"vatAmount"`
	Total          decimal.Decimal `json:"total"`
	TotalAed       decimal.Decimal `json:"totalAed"`
}

// ChargesPayload cargos adicionales como campos discretos, igual que en el
// formato externo histórico. Los cargos ausentes van en cero.
type ChargesPayload struct {
	PackingCharges   decimal.Decimal `json:"packingCharges"`
	FreightCharges   decimal.Decimal `json:"freightCharges"`
	InsuranceCharges decimal.Decimal `json:"insuranceCharges"`
	LoadingCharges   decimal.Decimal `json:"loadingCharges"`
	OtherCharges     decimal.Decimal `json:"otherCharges"`
}

// InvoicePayload payload de factura de venta.
type InvoicePayload struct {
	ID              *int64          `json:"id,omitempty"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	InvoiceDate     string          `json:"invoiceDate"`
	DueDate         string          `json:"dueDate,omitempty"`
	CustomerID      *int64          `json:"customerId"`
	CustomerDetails PartyDetails    `json:"customerDetails"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Reference       string          `json:"reference,omitempty"`
	PaymentTerms    string          `json:"paymentTerms,omitempty"`
	PlaceOfSupply   string          `json:"placeOfSupply,omitempty"`
	Items           []ItemPayload   `json:"items"`
	ChargesPayload
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	TotalsPayload
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
	Terms         string `json:"terms,omitempty"`
	IsLocked      bool   `json:"isLocked,omitempty"`
}

// QuotationPayload payload de cotización. validUntil es la fecha de
// vencimiento de la oferta.
type QuotationPayload struct {
	ID              *int64          `json:"id,omitempty"`
	QuotationNumber string          `json:"quotationNumber,omitempty"`
	QuotationDate   string          `json:"quotationDate"`
	ValidUntil      string          `json:"validUntil,omitempty"`
	CustomerID      *int64          `json:"customerId"`
	CustomerDetails PartyDetails    `json:"customerDetails"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Reference       string          `json:"reference,omitempty"`
	PaymentTerms    string          `json:"paymentTerms,omitempty"`
	Items           []ItemPayload   `json:"items"`
	ChargesPayload
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	TotalsPayload
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
	Terms         string `json:"terms,omitempty"`
	IsLocked      bool   `json:"isLocked,omitempty"`
}

// PurchaseOrderPayload payload de orden de compra.
type PurchaseOrderPayload struct {
	ID               *int64          `json:"id,omitempty"`
	PoNumber         string          `json:"poNumber,omitempty"`
	OrderDate        string          `json:"orderDate"`
	ExpectedDelivery string          `json:"expectedDelivery,omitempty"`
	SupplierID       *int64          `json:"supplierId"`
	SupplierDetails  PartyDetails    `json:"supplierDetails"`
	Currency         string          `json:"currency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Reference        string          `json:"reference,omitempty"`
	PaymentTerms     string          `json:"paymentTerms,omitempty"`
	DeliveryTerms    string          `json:"deliveryTerms,omitempty"`
	Items            []ItemPayload   `json:"items"`
	ChargesPayload
	TotalsPayload
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
	Terms         string `json:"terms,omitempty"`
	IsLocked      bool   `json:"isLocked,omitempty"`
}

// VendorBillPayload payload de factura de proveedor.
type VendorBillPayload struct {
	ID                  *int64          `json:"id,omitempty"`
	BillNumber          string          `json:"billNumber,omitempty"`
	VendorInvoiceNumber string          `json:"vendorInvoiceNumber,omitempty"`
	BillDate            string          `json:"billDate"`
	DueDate             string          `json:"dueDate,omitempty"`
	SupplierID          *int64          `json:"supplierId"`
	SupplierDetails     PartyDetails    `json:"supplierDetails"`
	VatCategory         string          `json:"vatCategory,omitempty"`
	PlaceOfSupply       string          `json:"placeOfSupply,omitempty"`
	Currency            string          `json:"currency"`
	ExchangeRate        decimal.Decimal `json:"exchangeRate"`
	Reference           string          `json:"reference,omitempty"`
	PaymentTerms        string          `json:"paymentTerms,omitempty"`
	Items               []ItemPayload   `json:"items"`
	ChargesPayload
	TotalsPayload
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
	Terms         string `json:"terms,omitempty"`
	IsLocked      bool   `json:"isLocked,omitempty"`
}
