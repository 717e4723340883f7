package adapter

import (
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// PurchaseOrderAdapter mapeo bidireccional de órdenes de compra. No llevan
// descuento a nivel de documento.
type PurchaseOrderAdapter struct{}

// DocumentType implementa Adapter.
func (PurchaseOrderAdapter) DocumentType() string { return formconfig.TypePurchaseOrder }

// ToForm transforma la respuesta externa al estado canónico.
func (PurchaseOrderAdapter) ToForm(resp map[string]any) entity.DocumentState {
	cfg := formconfig.PurchaseOrder()
	return entity.DocumentState{
		Header: entity.Header{
			DocNumber:     getString(resp, "poNumber"),
			Date:          getString(resp, "orderDate"),
			DueDate:       getString(resp, "expectedDelivery"),
			Currency:      currencyFromWire(resp, cfg),
			ExchangeRate:  exchangeRateFromWire(resp),
			Reference:     getString(resp, "reference"),
			PaymentTerms:  getString(resp, "paymentTerms"),
			DeliveryTerms: getString(resp, "deliveryTerms"),
		},
		Party:    partyFromWire(resp, "supplierId", "supplierDetails", entity.PartyRoleVendor),
		Lines:    linesFromWire(resp, cfg.Defaults.VatRate),
		Charges:  chargesFromWire(resp, cfg),
		Discount: entity.Discount{Type: entity.DiscountTypeAmount},
		Notes:    notesFromWire(resp),
		Meta:     metaFromWire(resp),
	}
}

// FromForm produce el payload de persistencia.
func (PurchaseOrderAdapter) FromForm(doc entity.DocumentState) any {
	return dto.PurchaseOrderPayload{
		ID:               doc.Meta.ID,
		PoNumber:         doc.Header.DocNumber,
		OrderDate:        doc.Header.Date,
		ExpectedDelivery: doc.Header.DueDate,
		SupplierID:       doc.Party.ID,
		SupplierDetails:  partyToWire(doc.Party),
		Currency:         doc.Header.Currency,
		ExchangeRate:     doc.Header.ExchangeRate,
		Reference:        doc.Header.Reference,
		PaymentTerms:     doc.Header.PaymentTerms,
		DeliveryTerms:    doc.Header.DeliveryTerms,
		Items:            itemsToWire(doc.Lines),
		ChargesPayload:   chargesToWire(doc),
		TotalsPayload:    totalsToWire(doc.Totals),
		Status:           doc.Meta.Status,
		Notes:            doc.Notes.CustomerNotes,
		InternalNotes:    doc.Notes.InternalNotes,
		Terms:            doc.Notes.Terms,
		IsLocked:         doc.Meta.IsLocked,
	}
}
