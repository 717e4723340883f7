package adapter

import (
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// InvoiceAdapter mapeo bidireccional de facturas de venta.
type InvoiceAdapter struct{}

// DocumentType implementa Adapter.
func (InvoiceAdapter) DocumentType() string { return formconfig.TypeInvoice }

// ToForm transforma la respuesta externa al estado canónico. Las cifras
// derivadas no se copian: se recalculan al sembrar el editor.
func (InvoiceAdapter) ToForm(resp map[string]any) entity.DocumentState {
	cfg := formconfig.Invoice()
	return entity.DocumentState{
		Header: entity.Header{
			DocNumber:     getString(resp, "invoiceNumber"),
			Date:          getString(resp, "invoiceDate"),
			DueDate:       getString(resp, "dueDate"),
			Currency:      currencyFromWire(resp, cfg),
			ExchangeRate:  exchangeRateFromWire(resp),
			Reference:     getString(resp, "reference"),
			PaymentTerms:  getString(resp, "paymentTerms"),
			PlaceOfSupply: getString(resp, "placeOfSupply"),
		},
		Party:    partyFromWire(resp, "customerId", "customerDetails", entity.PartyRoleCustomer),
		Lines:    linesFromWire(resp, cfg.Defaults.VatRate),
		Charges:  chargesFromWire(resp, cfg),
		Discount: discountFromWire(resp),
		Notes:    notesFromWire(resp),
		Meta:     metaFromWire(resp),
	}
}

// FromForm produce el payload de persistencia.
func (InvoiceAdapter) FromForm(doc entity.DocumentState) any {
	return dto.InvoicePayload{
		ID:              doc.Meta.ID,
		InvoiceNumber:   doc.Header.DocNumber,
		InvoiceDate:     doc.Header.Date,
		DueDate:         doc.Header.DueDate,
		CustomerID:      doc.Party.ID,
		CustomerDetails: partyToWire(doc.Party),
		Currency:        doc.Header.Currency,
		ExchangeRate:    doc.Header.ExchangeRate,
		Reference:       doc.Header.Reference,
		PaymentTerms:    doc.Header.PaymentTerms,
		PlaceOfSupply:   doc.Header.PlaceOfSupply,
		Items:           itemsToWire(doc.Lines),
		ChargesPayload:  chargesToWire(doc),
		DiscountType:    doc.Discount.Type,
		DiscountValue:   doc.Discount.Value,
		TotalsPayload:   totalsToWire(doc.Totals),
		Status:          doc.Meta.Status,
		Notes:           doc.Notes.CustomerNotes,
		InternalNotes:   doc.Notes.InternalNotes,
		Terms:           doc.Notes.Terms,
		IsLocked:        doc.Meta.IsLocked,
	}
}
