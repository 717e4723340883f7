package adapter

import (
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// QuotationAdapter mapeo bidireccional de cotizaciones. validUntil del
// formato externo se mapea al dueDate canónico.
type QuotationAdapter struct{}

// DocumentType implementa Adapter.
func (QuotationAdapter) DocumentType() string { return formconfig.TypeQuotation }

// ToForm transforma la respuesta externa al estado canónico.
func (QuotationAdapter) ToForm(resp map[string]any) entity.DocumentState {
	cfg := formconfig.Quotation()
	return entity.DocumentState{
		Header: entity.Header{
			DocNumber:    getString(resp, "quotationNumber"),
			Date:         getString(resp, "quotationDate"),
			DueDate:      getString(resp, "validUntil"),
			Currency:     currencyFromWire(resp, cfg),
			ExchangeRate: exchangeRateFromWire(resp),
			Reference:    getString(resp, "reference"),
			PaymentTerms: getString(resp, "paymentTerms"),
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
func (QuotationAdapter) FromForm(doc entity.DocumentState) any {
	return dto.QuotationPayload{
		ID:              doc.Meta.ID,
		QuotationNumber: doc.Header.DocNumber,
		QuotationDate:   doc.Header.Date,
		ValidUntil:      doc.Header.DueDate,
		CustomerID:      doc.Party.ID,
		CustomerDetails: partyToWire(doc.Party),
		Currency:        doc.Header.Currency,
		ExchangeRate:    doc.Header.ExchangeRate,
		Reference:       doc.Header.Reference,
		PaymentTerms:    doc.Header.PaymentTerms,
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
