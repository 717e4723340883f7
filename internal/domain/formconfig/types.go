// Package formconfig define la configuración declarativa por tipo de documento
// (flags de funcionalidades, descriptores de campos y columnas, cargos
// habilitados, valores por defecto y puntos de extensión) junto con su
// validador estructural. Las configuraciones se construyen una sola vez al
// cargar el módulo y nunca se mutan en runtime; son seguras de compartir por
// referencia entre sesiones de edición concurrentes.
package formconfig

import (
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// Tipos de documento soportados.
const (
	TypeInvoice       = "invoice"
	TypeQuotation     = "quotation"
	TypePurchaseOrder = "purchase_order"
	TypeVendorBill    = "vendor_bill"
)

// Tipos de campo admitidos en los descriptores.
const (
	FieldText     = "text"
	FieldDate     = "date"
	FieldNumber   = "number"
	FieldSelect   = "select"
	FieldTextarea = "textarea"
)

// Niveles de error de validación de documento.
const (
	LevelField      = "field"
	LevelCrossField = "cross-field"
	LevelBusiness   = "business"
	LevelCustom     = "custom"
)

// ValidationError error estructurado producido por el motor de validación.
// Nunca se lanza; se acumula en listas para que el host lo presente.
type ValidationError struct {
	Level   string `json:"level"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// CustomValidator función de validación suministrada por la configuración.
// Se ejecuta como última capa del motor y puede devolver errores de
// cualquier nivel. Es el punto de extensión para reglas específicas de un
// tipo de documento que no caben en el esquema declarativo.
type CustomValidator func(doc entity.DocumentState, cfg *Config) []ValidationError

// FieldOption opción de un campo select.
type FieldOption struct {
	Value string
	Label string
}

// HeaderField descriptor de un campo de cabecera.
type HeaderField struct {
	Key          string
	Label        string
	Type         string
	Required     bool
	Visible      bool
	Editable     bool
	DefaultValue string
	Options      []FieldOption // solo para Type == select
}

// LineColumn descriptor de una columna de líneas de detalle.
type LineColumn struct {
	Key      string
	Label    string
	Type     string
	Required bool
	Visible  bool
	Editable bool
	Align    string // left | center | right
	Format   string // currency | number | percent (opcional)
}

// ChargeType cargo adicional habilitado, con su tasa de IVA por defecto.
type ChargeType struct {
	Key            string
	Label          string
	Enabled        bool
	DefaultVatRate decimal.Decimal
}

// Defaults valores iniciales para un documento vacío.
type Defaults struct {
	Currency      string
	ExchangeRate  decimal.Decimal
	VatRate       decimal.Decimal
	PaymentTerms  string
	PlaceOfSupply string
	Status        string
}

// FeatureFlags registro de tamaño fijo con los flags que controlan qué
// campos opcionales, columnas, cargos y acciones están activos para un
// tipo de documento.
type FeatureFlags struct {
	EnableCurrency            bool
	EnableExchangeRate        bool
	EnableDueDate             bool
	EnablePaymentTerms        bool
	EnableReference           bool
	EnablePlaceOfSupply       bool
	EnableVat                 bool
	EnableLineVat             bool
	EnableLineDiscount        bool
	EnableInvoiceDiscount     bool
	EnableAdditionalCharges   bool
	EnableNotes               bool
	EnableInternalNotes       bool
	EnableTerms               bool
	EnableProductSearch       bool
	EnableUnitColumn          bool
	EnableDescriptionColumn   bool
	EnableReorderLines        bool
	EnableBulkLineOps         bool
	EnableDraftSave           bool
	EnableApprove             bool
	EnablePreview             bool
	EnablePdfDownload         bool
	EnableDuplicate           bool
	EnableEmailSend           bool
	EnableVendorInvoiceNumber bool
	EnableVatCategory         bool
	EnableDeliveryTerms       bool
}

// Overrides escape hatches de la configuración: validadores propios del
// tipo de documento y sobrescrituras puntuales de descriptores.
type Overrides struct {
	CustomValidators []CustomValidator
	HeaderFields     []HeaderField // reemplazan por Key a los declarados
	LineColumns      []LineColumn
}

// Config configuración inmutable de un tipo de documento.
type Config struct {
	Version       int
	DocumentType  string
	DocumentLabel string
	NumberPrefix  string
	ListRoute     string

	PartyLabel string
	PartyRole  string // customer | vendor

	Features *FeatureFlags
	Defaults *Defaults

	HeaderFields []HeaderField
	LineColumns  []LineColumn
	ChargeTypes  []ChargeType

	// Slots nombrados para el host (nombre de slot -> componente del host).
	Slots map[string]string

	Overrides Overrides
}

// ChargeType devuelve el descriptor del cargo con la clave dada.
func (c *Config) ChargeType(key string) (ChargeType, bool) {
	for _, ct := range c.ChargeTypes {
		if ct.Key == key && ct.Enabled {
			return ct, true
		}
	}
	return ChargeType{}, false
}

// EffectiveHeaderFields aplica las sobrescrituras por Key sobre los
// descriptores declarados.
func (c *Config) EffectiveHeaderFields() []HeaderField {
	if len(c.Overrides.HeaderFields) == 0 {
		return c.HeaderFields
	}
	out := make([]HeaderField, len(c.HeaderFields))
	copy(out, c.HeaderFields)
	for _, ov := range c.Overrides.HeaderFields {
		for i := range out {
			if out[i].Key == ov.Key {
				out[i] = ov
			}
		}
	}
	return out
}
