package formconfig

import (
	"fmt"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// VendorBill configuración de facturas de proveedor (compras). Registra el
// número de factura del proveedor y la categoría de IVA para el control del
// impuesto soportado. No se envía ni se previsualiza: es un registro interno.
func VendorBill() *Config {
	return &Config{
		Version:       1,
		DocumentType:  TypeVendorBill,
		DocumentLabel: "Vendor Bill",
		NumberPrefix:  "BILL",
		ListRoute:     "/vendor-bills",

		PartyLabel: "Supplier",
		PartyRole:  "vendor",

		Features: &FeatureFlags{
			EnableCurrency:            true,
			EnableExchangeRate:        true,
			EnableDueDate:             true,
			EnablePaymentTerms:        true,
			EnableReference:           true,
			EnablePlaceOfSupply:       true,
			EnableVat:                 true,
			EnableLineVat:             true,
			EnableAdditionalCharges:   true,
			EnableNotes:               true,
			EnableInternalNotes:       true,
			EnableUnitColumn:          true,
			EnableDescriptionColumn:   true,
			EnableBulkLineOps:         true,
			EnableDraftSave:           true,
			EnableApprove:             true,
			EnableVendorInvoiceNumber: true,
			EnableVatCategory:         true,
		},
		Defaults: standardDefaults(),

		HeaderFields: []HeaderField{
			{Key: "docNumber", Label: "Bill Number", Type: FieldText, Visible: true},
			{Key: "vendorInvoiceNumber", Label: "Vendor Invoice Number", Type: FieldText, Required: true, Visible: true, Editable: true},
			{Key: "date", Label: "Bill Date", Type: FieldDate, Required: true, Visible: true, Editable: true},
			{Key: "dueDate", Label: "Due Date", Type: FieldDate, Visible: true, Editable: true},
			{Key: "vatCategory", Label: "VAT Category", Type: FieldSelect, Required: true, Visible: true, Editable: true, DefaultValue: "STANDARD",
				Options: vatCategoryOptions()},
			{Key: "currency", Label: "Currency", Type: FieldSelect, Required: true, Visible: true, Editable: true, DefaultValue: "AED",
				Options: []FieldOption{{Value: "AED", Label: "AED"}, {Value: "USD", Label: "USD"}, {Value: "EUR", Label: "EUR"}}},
			{Key: "exchangeRate", Label: "Exchange Rate", Type: FieldNumber, Required: true, Visible: true, Editable: true, DefaultValue: "1"},
			{Key: "placeOfSupply", Label: "Place of Supply", Type: FieldText, Visible: true, Editable: true, DefaultValue: "AE-DU"},
			{Key: "paymentTerms", Label: "Payment Terms", Type: FieldSelect, Visible: true, Editable: true, DefaultValue: "net_30",
				Options: []FieldOption{{Value: "immediate", Label: "Immediate"}, {Value: "net_15", Label: "Net 15"}, {Value: "net_30", Label: "Net 30"}, {Value: "net_60", Label: "Net 60"}}},
		},
		LineColumns: standardLineColumns(),
		ChargeTypes: standardChargeTypes(),

		Overrides: Overrides{
			CustomValidators: []CustomValidator{zeroRatedLinesMustCarryZeroVat},
		},
	}
}

// zeroRatedLinesMustCarryZeroVat regla propia de facturas de proveedor: si
// la categoría de IVA del documento es ZERO_RATED o EXEMPT, ninguna línea
// puede llevar una tasa de IVA distinta de cero.
func zeroRatedLinesMustCarryZeroVat(doc entity.DocumentState, cfg *Config) []ValidationError {
	if doc.Header.VatCategory != "ZERO_RATED" && doc.Header.VatCategory != "EXEMPT" {
		return nil
	}
	var errs []ValidationError
	for i, line := range doc.Lines {
		if !line.VatRate.IsZero() {
			errs = append(errs, ValidationError{
				Level:   LevelCustom,
				Field:   fmt.Sprintf("lines[%d].vatRate", i),
				Message: fmt.Sprintf("Line %d: VAT rate must be 0 for %s bills", i+1, doc.Header.VatCategory),
				Code:    "VAT_CATEGORY_RATE_MISMATCH",
			})
		}
	}
	return errs
}
