package formconfig

import (
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// ForType devuelve la configuración del tipo de documento indicado.
func ForType(documentType string) (*Config, error) {
	switch documentType {
	case TypeInvoice:
		return Invoice(), nil
	case TypeQuotation:
		return Quotation(), nil
	case TypePurchaseOrder:
		return PurchaseOrder(), nil
	case TypeVendorBill:
		return VendorBill(), nil
	default:
		return nil, domain.ErrUnknownDocumentType
	}
}

// All devuelve las cuatro configuraciones soportadas.
func All() []*Config {
	return []*Config{Invoice(), Quotation(), PurchaseOrder(), VendorBill()}
}

// standardDefaults valores iniciales comunes a los cuatro tipos:
// moneda base AED, tasa de cambio 1, IVA plano 5%, net_30, Dubái.
func standardDefaults() *Defaults {
	return &Defaults{
		Currency:      "AED",
		ExchangeRate:  decimal.NewFromInt(1),
		VatRate:       decimal.NewFromInt(5),
		PaymentTerms:  "net_30",
		PlaceOfSupply: "AE-DU",
		Status:        entity.StatusDraft,
	}
}

// standardChargeTypes cargos adicionales habilitados, cada uno con el IVA
// estándar por defecto.
func standardChargeTypes() []ChargeType {
	vat := decimal.NewFromInt(5)
	return []ChargeType{
		{Key: entity.ChargePacking, Label: "Packing Charges", Enabled: true, DefaultVatRate: vat},
		{Key: entity.ChargeFreight, Label: "Freight Charges", Enabled: true, DefaultVatRate: vat},
		{Key: entity.ChargeInsurance, Label: "Insurance Charges", Enabled: true, DefaultVatRate: vat},
		{Key: entity.ChargeLoading, Label: "Loading Charges", Enabled: true, DefaultVatRate: vat},
		{Key: entity.ChargeOther, Label: "Other Charges", Enabled: true, DefaultVatRate: vat},
	}
}

// standardLineColumns columnas de líneas compartidas. amount, vatAmount y
// discountAmount no son editables: son salidas del calculador.
func standardLineColumns() []LineColumn {
	return []LineColumn{
		{Key: "productName", Label: "Product", Type: FieldText, Required: true, Visible: true, Editable: true, Align: "left"},
		{Key: "description", Label: "Description", Type: FieldText, Visible: true, Editable: true, Align: "left"},
		{Key: "quantity", Label: "Qty", Type: FieldNumber, Required: true, Visible: true, Editable: true, Align: "right", Format: "number"},
		{Key: "unit", Label: "Unit", Type: FieldText, Visible: true, Editable: true, Align: "center"},
		{Key: "rate", Label: "Rate", Type: FieldNumber, Required: true, Visible: true, Editable: true, Align: "right", Format: "currency"},
		{Key: "discountPercent", Label: "Disc %", Type: FieldNumber, Visible: true, Editable: true, Align: "right", Format: "percent"},
		{Key: "vatRate", Label: "VAT %", Type: FieldNumber, Visible: true, Editable: true, Align: "right", Format: "percent"},
		{Key: "amount", Label: "Amount", Type: FieldNumber, Visible: true, Align: "right", Format: "currency"},
		{Key: "vatAmount", Label: "VAT", Type: FieldNumber, Visible: true, Align: "right", Format: "currency"},
	}
}

// vatCategoryOptions categorías de IVA para facturas de proveedor.
func vatCategoryOptions() []FieldOption {
	return []FieldOption{
		{Value: "STANDARD", Label: "Standard Rated (5%)"},
		{Value: "ZERO_RATED", Label: "Zero Rated (0%)"},
		{Value: "EXEMPT", Label: "Exempt"},
		{Value: "REVERSE_CHARGE", Label: "Reverse Charge"},
	}
}
