package entity

import "github.com/shopspring/decimal"

// Estados de ciclo de vida de un documento comercial.
const (
	StatusDraft     = "draft"     // Editable, aún no aprobado
	StatusApproved  = "approved"  // Aprobado internamente
	StatusIssued    = "issued"    // Emitido con numeración definitiva
	StatusSent      = "sent"      // Enviado a la contraparte
	StatusAccepted  = "accepted"  // Aceptado por la contraparte (cotizaciones)
	StatusRejected  = "rejected"  // Rechazado por la contraparte
	StatusCancelled = "cancelled" // Anulado
)

// Roles de contraparte.
const (
	PartyRoleCustomer = "customer"
	PartyRoleVendor   = "vendor"
)

// Tipos de descuento a nivel de documento.
const (
	DiscountTypeAmount  = "amount"
	DiscountTypePercent = "percent"
)

// Claves de cargos adicionales. Un cargo con monto cero se considera ausente
// y se elimina del documento antes de llegar al calculador.
const (
	ChargePacking   = "packing"
	ChargeFreight   = "freight"
	ChargeInsurance = "insurance"
	ChargeLoading   = "loading"
	ChargeOther     = "other"
)

// DocumentState es la forma canónica en memoria de un documento comercial,
// compartida por los cuatro tipos (factura, cotización, orden de compra,
// factura de proveedor). Es independiente del formato de transporte; los
// adaptadores traducen hacia y desde el formato externo.
type DocumentState struct {
	Header   Header
	Party    Party
	Lines    []LineItem
	Charges  []Charge
	Discount Discount
	Totals   Totals
	Notes    Notes
	Meta     Meta
}

// Header cabecera del documento. Las fechas se mantienen como string
// ISO (YYYY-MM-DD) igual que en el formato externo; la validación
// comprueba que sean parseables.
type Header struct {
	DocNumber     string
	Date          string
	DueDate       string
	Currency      string
	ExchangeRate  decimal.Decimal
	Reference     string
	PaymentTerms  string
	PlaceOfSupply string

	// Campos opcionales específicos por tipo de documento.
	VendorInvoiceNumber string // facturas de proveedor
	VatCategory         string // facturas de proveedor
	DeliveryTerms       string // órdenes de compra
}

// Party identidad de la contraparte. ID nil significa "sin seleccionar".
type Party struct {
	ID      *int64
	Role    string // customer | vendor
	Name    string
	Company string
	TaxID   string
	Email   string
	Phone   string
	Address Address
}

// Address dirección estructurada de la contraparte.
type Address struct {
	Street     string
	City       string
	Region     string
	Country    string
	PostalCode string
}

// LineItem línea de detalle. ID es estable dentro del documento, asignado
// por el editor y nunca reutilizado. Amount, VatAmount y DiscountAmount
// son salidas del calculador; nunca se asignan a mano.
type LineItem struct {
	ID              string
	ProductID       *int64
	ProductName     string
	Description     string
	Quantity        decimal.Decimal
	Unit            string
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	VatRate         decimal.Decimal
	VatAmount       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// Charge cargo adicional (embalaje, flete, seguro, cargue, otros).
type Charge struct {
	Key       string
	Label     string
	Amount    decimal.Decimal
	VatRate   decimal.Decimal
	VatAmount decimal.Decimal
}

// Discount descuento a nivel de documento: monto fijo o porcentaje.
type Discount struct {
	Type  string // amount | percent
	Value decimal.Decimal
}

// Totals totales derivados. Siempre se recalculan; ningún código puede
// asignarlos de forma independiente al calculador.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	ChargesTotal   decimal.Decimal
	ChargesVat     decimal.Decimal
	VatAmount      decimal.Decimal
	Total          decimal.Decimal
	TotalAed       decimal.Decimal // total convertido a moneda base vía tasa de cambio
}

// Notes notas del documento.
type Notes struct {
	CustomerNotes string // visible para la contraparte
	InternalNotes string // solo uso interno
	Terms         string
}

// Meta identidad persistida y estado de ciclo de vida.
type Meta struct {
	ID        *int64
	Status    string
	CreatedAt string
	UpdatedAt string
	CreatedBy string
	IsLocked  bool
}

// Clone devuelve una copia profunda del estado. Los mutadores del editor
// trabajan siempre sobre una copia para que cada mutación produzca un
// valor nuevo (requisito para dirty-tracking y memoización por identidad).
func (d DocumentState) Clone() DocumentState {
	out := d
	if d.Party.ID != nil {
		id := *d.Party.ID
		out.Party.ID = &id
	}
	if d.Meta.ID != nil {
		id := *d.Meta.ID
		out.Meta.ID = &id
	}
	out.Lines = make([]LineItem, len(d.Lines))
	for i, l := range d.Lines {
		out.Lines[i] = l
		if l.ProductID != nil {
			pid := *l.ProductID
			out.Lines[i].ProductID = &pid
		}
	}
	out.Charges = make([]Charge, len(d.Charges))
	copy(out.Charges, d.Charges)
	return out
}

// FindCharge devuelve el cargo con la clave dada y su índice, o -1 si no existe.
func (d DocumentState) FindCharge(key string) (Charge, int) {
	for i, c := range d.Charges {
		if c.Key == key {
			return c, i
		}
	}
	return Charge{}, -1
}

// IsMutable indica si el documento admite más mutaciones. Un documento
// bloqueado fuera de estado draft es de solo lectura.
func (d DocumentState) IsMutable() bool {
	return !(d.Meta.IsLocked && d.Meta.Status != StatusDraft)
}
