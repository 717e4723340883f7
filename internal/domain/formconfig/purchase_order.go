package formconfig

// PurchaseOrder configuración de órdenes de compra. La contraparte es un
// proveedor, lleva términos de entrega y no admite descuento a nivel de
// documento: los precios negociados van directamente en las líneas.
func PurchaseOrder() *Config {
	return &Config{
		Version:       1,
		DocumentType:  TypePurchaseOrder,
		DocumentLabel: "Purchase Order",
		NumberPrefix:  "PO",
		ListRoute:     "/purchase-orders",

		PartyLabel: "Supplier",
		PartyRole:  "vendor",

		Features: &FeatureFlags{
			EnableCurrency:          true,
			EnableExchangeRate:      true,
			EnableDueDate:           true,
			EnablePaymentTerms:      true,
			EnableReference:         true,
			EnableVat:               true,
			EnableLineVat:           true,
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
			EnableDeliveryTerms:     true,
		},
		Defaults: standardDefaults(),

		HeaderFields: []HeaderField{
			{Key: "docNumber", Label: "PO Number", Type: FieldText, Visible: true},
			{Key: "date", Label: "Order Date", Type: FieldDate, Required: true, Visible: true, Editable: true},
			{Key: "dueDate", Label: "Expected Delivery", Type: FieldDate, Visible: true, Editable: true},
			{Key: "currency", Label: "Currency", Type: FieldSelect, Required: true, Visible: true, Editable: true, DefaultValue: "AED",
				Options: []FieldOption{{Value: "AED", Label: "AED"}, {Value: "USD", Label: "USD"}, {Value: "EUR", Label: "EUR"}, {Value: "CNY", Label: "CNY"}}},
			{Key: "exchangeRate", Label: "Exchange Rate", Type: FieldNumber, Required: true, Visible: true, Editable: true, DefaultValue: "1"},
			{Key: "reference", Label: "Reference", Type: FieldText, Visible: true, Editable: true},
			{Key: "paymentTerms", Label: "Payment Terms", Type: FieldSelect, Visible: true, Editable: true, DefaultValue: "net_30",
				Options: []FieldOption{{Value: "immediate", Label: "Immediate"}, {Value: "net_30", Label: "Net 30"}, {Value: "net_60", Label: "Net 60"}, {Value: "advance", Label: "Advance Payment"}}},
			{Key: "deliveryTerms", Label: "Delivery Terms", Type: FieldSelect, Visible: true, Editable: true, DefaultValue: "FOB",
				Options: []FieldOption{{Value: "EXW", Label: "Ex Works"}, {Value: "FOB", Label: "Free on Board"}, {Value: "CIF", Label: "Cost, Insurance & Freight"}, {Value: "DDP", Label: "Delivered Duty Paid"}}},
		},
		LineColumns: standardLineColumns(),
		ChargeTypes: standardChargeTypes(),
	}
}
