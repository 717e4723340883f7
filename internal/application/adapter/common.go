package adapter

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// partyFromWire reconstruye la contraparte desde el id y el bloque de
// detalle (objeto o string JSON).
func partyFromWire(m map[string]any, idKey, detailsKey, role string) entity.Party {
	details := getObject(m, detailsKey)
	address := getObject(details, "address")
	return entity.Party{
		ID:      getID(m, idKey),
		Role:    role,
		Name:    getString(details, "name"),
		Company: getString(details, "company"),
		TaxID:   getString(details, "trn"),
		Email:   getString(details, "email"),
		Phone:   getString(details, "phone"),
		Address: entity.Address{
			Street:     getString(address, "street"),
			City:       getString(address, "city"),
			Region:     getString(address, "region"),
			Country:    getString(address, "country"),
			PostalCode: getString(address, "postalCode"),
		},
	}
}

// linesFromWire reconstruye las líneas. Los identificadores de línea son
// del lado cliente: se asignan nuevos en cada reconstrucción y nunca se
// reutilizan. Las cifras derivadas se recalculan después, así que solo se
// toman las entradas. La unidad ausente degrada a PCS, igual que en el
// editor.
func linesFromWire(m map[string]any, defaultVat decimal.Decimal) []entity.LineItem {
	items := getSlice(m, "items")
	lines := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		vatRate := defaultVat
		if _, ok := pick(item, "vatRate"); ok {
			vatRate = getDecimal(item, "vatRate")
		}
		unit := getString(item, "unit")
		if unit == "" {
			unit = "PCS"
		}
		lines = append(lines, entity.LineItem{
			ID:              uuid.NewString(),
			ProductID:       getID(item, "productId"),
			ProductName:     getString(item, "productName"),
			Description:     getString(item, "description"),
			Quantity:        getDecimal(item, "quantity"),
			Unit:            unit,
			Rate:            getDecimal(item, "unitPrice"),
			VatRate:         vatRate,
			DiscountPercent: getDecimal(item, "discountPercent"),
		})
	}
	return lines
}

// chargesFromWire reconstruye el conjunto de cargos desde los campos
// discretos del formato externo (packingCharges, freightCharges, ...),
// filtrando los de monto cero. La tasa de IVA y la etiqueta salen del
// descriptor de la configuración.
func chargesFromWire(m map[string]any, cfg *formconfig.Config) []entity.Charge {
	var charges []entity.Charge
	for _, ct := range cfg.ChargeTypes {
		if !ct.Enabled {
			continue
		}
		amount := getDecimal(m, ct.Key+"Charges")
		if !amount.IsPositive() {
			continue
		}
		charges = append(charges, entity.Charge{
			Key:     ct.Key,
			Label:   ct.Label,
			Amount:  amount,
			VatRate: ct.DefaultVatRate,
		})
	}
	return charges
}

// discountFromWire descuento de documento; tipo desconocido degrada a amount.
func discountFromWire(m map[string]any) entity.Discount {
	t := getString(m, "discountType")
	if t != entity.DiscountTypePercent {
		t = entity.DiscountTypeAmount
	}
	return entity.Discount{Type: t, Value: getDecimal(m, "discountValue")}
}

// notesFromWire notas del documento.
func notesFromWire(m map[string]any) entity.Notes {
	return entity.Notes{
		CustomerNotes: getString(m, "notes"),
		InternalNotes: getString(m, "internalNotes"),
		Terms:         getString(m, "terms"),
	}
}

// metaFromWire identidad y ciclo de vida. El estado se normaliza a
// minúsculas; ausente degrada a draft.
func metaFromWire(m map[string]any) entity.Meta {
	status := strings.ToLower(getString(m, "status"))
	if status == "" {
		status = entity.StatusDraft
	}
	return entity.Meta{
		ID:        getID(m, "id"),
		Status:    status,
		CreatedAt: getString(m, "createdAt"),
		UpdatedAt: getString(m, "updatedAt"),
		CreatedBy: getString(m, "createdBy"),
		IsLocked:  getBool(m, "isLocked"),
	}
}

// exchangeRateFromWire tasa de cambio; ausente o no positiva degrada a 1.
func exchangeRateFromWire(m map[string]any) decimal.Decimal {
	rate := getDecimal(m, "exchangeRate")
	if !rate.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return rate
}

// currencyFromWire moneda; ausente degrada al valor por defecto del tipo.
func currencyFromWire(m map[string]any, cfg *formconfig.Config) string {
	if c := getString(m, "currency"); c != "" {
		return c
	}
	return cfg.Defaults.Currency
}

// partyToWire serializa la contraparte al bloque de detalle del payload.
func partyToWire(p entity.Party) dto.PartyDetails {
	return dto.PartyDetails{
		ID:      p.ID,
		Name:    p.Name,
		Company: p.Company,
		TRN:     p.TaxID,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: dto.AddressPayload{
			Street:     p.Address.Street,
			City:       p.Address.City,
			Region:     p.Address.Region,
			Country:    p.Address.Country,
			PostalCode: p.Address.PostalCode,
		},
	}
}

// itemsToWire serializa las líneas con sus cifras derivadas.
func itemsToWire(lines []entity.LineItem) []dto.ItemPayload {
	items := make([]dto.ItemPayload, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.ItemPayload{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			Description:     l.Description,
			Quantity:        l.Quantity,
			Unit:            l.Unit,
			UnitPrice:       l.Rate,
			Amount:          l.Amount,
			VatRate:         l.VatRate,
			VatAmount:       l.VatAmount,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
		})
	}
	return items
}

// chargesToWire serializa los cargos a los campos discretos del payload.
// Los cargos ausentes quedan en cero.
func chargesToWire(doc entity.DocumentState) dto.ChargesPayload {
	amount := func(key string) decimal.Decimal {
		if c, idx := doc.FindCharge(key); idx >= 0 {
			return c.Amount
		}
		return decimal.Zero
	}
	return dto.ChargesPayload{
		PackingCharges:   amount(entity.ChargePacking),
		FreightCharges:   amount(entity.ChargeFreight),
		InsuranceCharges: amount(entity.ChargeInsurance),
		LoadingCharges:   amount(entity.ChargeLoading),
		OtherCharges:     amount(entity.ChargeOther),
	}
}

// totalsToWire serializa los totales derivados.
func totalsToWire(t entity.Totals) dto.TotalsPayload {
	return dto.TotalsPayload{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		ChargesTotal:   t.ChargesTotal,
		ChargesVat:     t.ChargesVat,
		VatAmount:      t.VatAmount,
		Total:          t.Total,
		TotalAed:       t.TotalAed,
	}
}
