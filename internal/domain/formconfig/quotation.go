package formconfig

// Quotation configuración de cotizaciones. El campo dueDate se reutiliza
// como fecha de validez de la oferta; no hay descarga definitiva ni envío
// obligatorio por correo.
func Quotation() *Config {
	return &Config{
		Version:       1,
		DocumentType:  TypeQuotation,
		DocumentLabel: "Quotation",
		NumberPrefix:  "QUO",
		ListRoute:     "/quotations",

		PartyLabel: "Customer",
		PartyRole:  "customer",

		Features: &FeatureFlags{
			EnableCurrency:          true,
			EnableExchangeRate:      true,
			EnableDueDate:           true,
			EnablePaymentTerms:      true,
			EnableReference:         true,
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
		},
		Defaults: standardDefaults(),

		HeaderFields: []HeaderField{
			{Key: "docNumber", Label: "Quotation Number", Type: FieldText, Visible: true},
			{Key: "date", Label: "Quotation Date", Type: FieldDate, Required: true, Visible: true, Editable: true},
			{Key: "dueDate", Label: "Valid Until", Type: FieldDate, Visible: true, Editable: true},
			{Key: "currency", Label: "Currency", Type: FieldSelect, Required: true, Visible: true, Editable: true, DefaultValue: "AED",
				Options: []FieldOption{{Value: "AED", Label: "AED"}, {Value: "USD", Label: "USD"}, {Value: "EUR", Label: "EUR"}}},
			{Key: "exchangeRate", Label: "Exchange Rate", Type: FieldNumber, Required: true, Visible: true, Editable: true, DefaultValue: "1"},
			{Key: "reference", Label: "Reference", Type: FieldText, Visible: true, Editable: true},
			{Key: "paymentTerms", Label: "Payment Terms", Type: FieldSelect, Visible: true, Editable: true, DefaultValue: "net_30",
				Options: []FieldOption{{Value: "immediate", Label: "Immediate"}, {Value: "net_15", Label: "Net 15"}, {Value: "net_30", Label: "Net 30"}, {Value: "net_60", Label: "Net 60"}}},
		},
		LineColumns: standardLineColumns(),
		ChargeTypes: standardChargeTypes(),

		Slots: map[string]string{
			"afterLineItems": "AlternativeProducts",
			"beforeNotes":    "DeliverySchedule",
		},
	}
}
