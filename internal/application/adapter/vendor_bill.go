package adapter

import (
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// VendorBillAdapter mapeo bidireccional de facturas de proveedor. El
// formato externo histórico usa indistintamente vendor/supplier en las
// claves; pick resuelve la variante snake_case y aquí se resuelven los
// sinónimos.
type VendorBillAdapter struct{}

// DocumentType implementa Adapter.
func (VendorBillAdapter) DocumentType() string { return formconfig.TypeVendorBill }

// ToForm transforma la respuesta externa al estado canónico.
func (VendorBillAdapter) ToForm(resp map[string]any) entity.DocumentState {
	cfg := formconfig.VendorBill()

	// Sinónimos históricos: supplierId/vendorId, supplierDetails/vendorDetails.
	idKey := "supplierId"
	if _, ok := pick(resp, idKey); !ok {
		idKey = "vendorId"
	}
	detailsKey := "supplierDetails"
	if _, ok := pick(resp, detailsKey); !ok {
		detailsKey = "vendorDetails"
	}

	vatCategory := getString(resp, "vatCategory")
	if vatCategory == "" {
		vatCategory = getString(resp, "primaryVatCategory")
	}
	if vatCategory == "" {
		vatCategory = "STANDARD"
	}

	return entity.DocumentState{
		Header: entity.Header{
			DocNumber:           getString(resp, "billNumber"),
			VendorInvoiceNumber: getString(resp, "vendorInvoiceNumber"),
			Date:                getString(resp, "billDate"),
			DueDate:             getString(resp, "dueDate"),
			VatCategory:         vatCategory,
			PlaceOfSupply:       getString(resp, "placeOfSupply"),
			Currency:            currencyFromWire(resp, cfg),
			ExchangeRate:        exchangeRateFromWire(resp),
			Reference:           getString(resp, "reference"),
			PaymentTerms:        getString(resp, "paymentTerms"),
		},
		Party:    partyFromWire(resp, idKey, detailsKey, entity.PartyRoleVendor),
		Lines:    linesFromWire(resp, cfg.Defaults.VatRate),
		Charges:  chargesFromWire(resp, cfg),
		Discount: entity.Discount{Type: entity.DiscountTypeAmount},
		Notes:    notesFromWire(resp),
		Meta:     metaFromWire(resp),
	}
}

// FromForm produce el payload de persistencia.
func (VendorBillAdapter) FromForm(doc entity.DocumentState) any {
	return dto.VendorBillPayload{
		ID:                  doc.Meta.ID,
		BillNumber:          doc.Header.DocNumber,
		VendorInvoiceNumber: doc.Header.VendorInvoiceNumber,
		BillDate:            doc.Header.Date,
		DueDate:             doc.Header.DueDate,
		SupplierID:          doc.Party.ID,
		SupplierDetails:     partyToWire(doc.Party),
		VatCategory:         doc.Header.VatCategory,
		PlaceOfSupply:       doc.Header.PlaceOfSupply,
		Currency:            doc.Header.Currency,
		ExchangeRate:        doc.Header.ExchangeRate,
		Reference:           doc.Header.Reference,
		PaymentTerms:        doc.Header.PaymentTerms,
		Items:               itemsToWire(doc.Lines),
		ChargesPayload:      chargesToWire(doc),
		TotalsPayload:       totalsToWire(doc.Totals),
		Status:              doc.Meta.Status,
		Notes:               doc.Notes.CustomerNotes,
		InternalNotes:       doc.Notes.InternalNotes,
		Terms:               doc.Notes.Terms,
		IsLocked:            doc.Meta.IsLocked,
	}
}
