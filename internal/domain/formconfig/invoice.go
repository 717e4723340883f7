package formconfig

// Invoice configuración de facturas de venta. Es el tipo con el conjunto
// completo de funcionalidades: IVA por línea, descuento por línea y por
// documento, cargos adicionales, moneda extranjera y envío por correo.
func Invoice() *Config {
	return &Config{
		Version:       1,
		DocumentType:  TypeInvoice,
		DocumentLabel: "Invoice",
		NumberPrefix:  "INV",
		ListRoute:     "/invoices",

		PartyLabel: "Customer",
		PartyRole:  "customer",

		Features: &FeatureFlags{
			EnableCurrency:          true,
			EnableExchangeRate:      true,
			EnableDueDate:           true,
			EnablePaymentTerms:      true,
			EnableReference:         true,
			EnablePlaceOfSupply:     true,
			EnableVat:               true,
			EnableLineVat:           true,
			EnableLineDiscount:      true,
			EnableInvoiceDiscount:   true,
			EnableAdditionalCharges: true,
			EnableNotes:             true,
			EnableInternalNotes:     true,
			EnableTerms:             true,
			EnableProductSearch:     true,
			EnableUnitColumn:        true,
			EnableDescriptionColumn: true,
			EnableReorderLines:      true,
			EnableBulkLineOps:       true,
			EnableDraftSave:         true,
			EnableApprove:           true,
			EnablePreview:           true,
			EnablePdfDownload:       true,
			EnableDuplicate:         true,
			EnableEmailSend:         true,
		},
		Defaults: standardDefaults(),

		HeaderFields: []HeaderField{
			{Key: "docNumber", Label: "Invoice Number", Type: FieldText, Visible: true},
			{Key: "date", Label: "Invoice Date", Type: FieldDate, Required: true, Visible: true, Editable: true},
			{Key: "dueDate", Label: "Due Date", Type: FieldDate, Visible: true, Editable: true},
			{Key: "currency", Label: "Currency", Type: FieldSelect, Required: true, Visible: true, Editable: true, DefaultValue: "AED",
				Options: []FieldOption{{Value: "AED", Label: "AED"}, {Value: "USD", Label: "USD"}, {Value: "EUR", Label: "EUR"}}},
			{Key: "exchangeRate", Label: "Exchange Rate", Type: FieldNumber, Required: true, Visible: true, Editable: true, DefaultValue: "1"},
			{Key: "reference", Label: "Reference", Type: FieldText, Visible: true, Editable: true},
			{Key: "paymentTerms", Label: "Payment Terms", Type: FieldSelect, Visible: true, Editable: true, DefaultValue: "net_30",
				Options: []FieldOption{{Value: "immediate", Label: "Immediate"}, {Value: "net_15", Label: "Net 15"}, {Value: "net_30", Label: "Net 30"}, {Value: "net_60", Label: "Net 60"}}},
			{Key: "placeOfSupply", Label: "Place of Supply", Type: FieldText, Visible: true, Editable: true, DefaultValue: "AE-DU"},
		},
		LineColumns: standardLineColumns(),
		ChargeTypes: standardChargeTypes(),

		Slots: map[string]string{
			"afterLineItems": "WarehouseStockSummary",
		},
	}
}
