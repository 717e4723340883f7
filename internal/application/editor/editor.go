// Package editor implementa el contenedor de estado de una sesión de edición
// de documento. Mantiene el DocumentState canónico y expone mutadores con
// nombre; cada mutación produce un valor de estado nuevo (copy-on-write) y
// vuelve a derivar cifras y totales con el calculador. Una instancia sirve a
// un único documento con un único escritor; la configuración llega por
// referencia y nunca se muta.
package editor

import (
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// HeaderPatch actualización parcial de cabecera; los campos nil no cambian.
type HeaderPatch struct {
	DocNumber           *string
	Date                *string
	DueDate             *string
	Currency            *string
	ExchangeRate        *decimal.Decimal
	Reference           *string
	PaymentTerms        *string
	PlaceOfSupply       *string
	VendorInvoiceNumber *string
	VatCategory         *string
	DeliveryTerms       *string
}

// LinePatch actualización parcial de una línea; los campos nil no cambian.
type LinePatch struct {
	ProductID       *int64
	ProductName     *string
	Description     *string
	Unit            *string
	Quantity        *decimal.Decimal
	Rate            *decimal.Decimal
	VatRate         *decimal.Decimal
	DiscountPercent *decimal.Decimal
}

// NotesPatch actualización parcial de notas.
type NotesPatch struct {
	CustomerNotes *string
	InternalNotes *string
	Terms         *string
}

// Editor contenedor de estado de una sesión de edición.
type Editor struct {
	cfg   *formconfig.Config
	opts  document.CalculatorOptions
	state entity.DocumentState
	seed  *entity.DocumentState // snapshot del documento persistido del que se sembró
}

// New crea un editor con un documento vacío derivado de los valores por
// defecto de la configuración.
func New(cfg *formconfig.Config) *Editor {
	e := &Editor{cfg: cfg, opts: document.DefaultOptions()}
	e.state = e.recalc(emptyState(cfg))
	return e
}

// NewFromDocument crea un editor sembrado desde un documento existente
// (salida de un adaptador). El snapshot posterior a la derivación inicial es
// la referencia para el dirty-tracking.
func NewFromDocument(cfg *formconfig.Config, doc entity.DocumentState) *Editor {
	e := &Editor{cfg: cfg, opts: document.DefaultOptions()}
	if doc.Lines == nil {
		doc.Lines = []entity.LineItem{}
	}
	e.state = e.recalc(doc)
	seed := e.state.Clone()
	e.seed = &seed
	return e
}

// WithOptions reemplaza las opciones del calculador y vuelve a derivar,
// incluida la referencia de siembra para que el dirty-tracking compare
// cifras derivadas con las mismas opciones.
func (e *Editor) WithOptions(opts document.CalculatorOptions) *Editor {
	e.opts = opts
	e.state = e.recalc(e.state)
	if e.seed != nil {
		seed := e.recalc(*e.seed)
		e.seed = &seed
	}
	return e
}

// Document devuelve el estado actual.
func (e *Editor) Document() entity.DocumentState { return e.state }

// Config devuelve la configuración de la sesión.
func (e *Editor) Config() *formconfig.Config { return e.cfg }

// Result deriva el resultado completo del calculador para el estado actual.
func (e *Editor) Result() document.CalculatorResult {
	return document.Calculate(e.state, e.opts)
}

// Validation ejecuta la validación completa sobre el estado actual.
func (e *Editor) Validation() document.ValidationResult {
	return document.Validate(e.state, e.cfg, e.cfg.Overrides.CustomValidators)
}

// IsDirty indica si el estado difiere de su referencia: el snapshot de
// siembra si lo hay, o el estado vacío si la sesión empezó en blanco.
func (e *Editor) IsDirty() bool {
	if e.seed != nil {
		return !reflect.DeepEqual(e.state, *e.seed)
	}
	return e.state.Party.ID != nil ||
		len(e.state.Lines) > 0 ||
		e.state.Header.Reference != ""
}

// Replace sustituye el estado completo (entrada de un adaptador).
func (e *Editor) Replace(doc entity.DocumentState) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	if doc.Lines == nil {
		doc.Lines = []entity.LineItem{}
	}
	e.state = e.recalc(doc)
	return nil
}

// SetHeader aplica una actualización parcial de cabecera.
func (e *Editor) SetHeader(patch HeaderPatch) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	next := e.state.Clone()
	h := &next.Header
	setString(&h.DocNumber, patch.DocNumber)
	setString(&h.Date, patch.Date)
	setString(&h.DueDate, patch.DueDate)
	setString(&h.Currency, patch.Currency)
	if patch.ExchangeRate != nil {
		h.ExchangeRate = *patch.ExchangeRate
	}
	setString(&h.Reference, patch.Reference)
	setString(&h.PaymentTerms, patch.PaymentTerms)
	setString(&h.PlaceOfSupply, patch.PlaceOfSupply)
	setString(&h.VendorInvoiceNumber, patch.VendorInvoiceNumber)
	setString(&h.VatCategory, patch.VatCategory)
	setString(&h.DeliveryTerms, patch.DeliveryTerms)
	e.state = e.recalc(next)
	return nil
}

// SetParty reemplaza la contraparte. Si el rol viene vacío se toma el de la
// configuración.
func (e *Editor) SetParty(party entity.Party) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	if party.Role == "" {
		party.Role = e.cfg.PartyRole
	}
	next := e.state.Clone()
	next.Party = party
	e.state = e.recalc(next)
	return nil
}

// AddLine agrega una línea con identificador nuevo (nunca se reutiliza) y
// valores por defecto de la configuración; patch opcional.
func (e *Editor) AddLine(patch *LinePatch) (entity.LineItem, error) {
	if !e.state.IsMutable() {
		return entity.LineItem{}, domain.ErrLocked
	}
	line := entity.LineItem{
		ID:       uuid.NewString(),
		Quantity: decimal.NewFromInt(1),
		Unit:     "PCS",
		VatRate:  e.cfg.Defaults.VatRate,
	}
	applyLinePatch(&line, patch)
	next := e.state.Clone()
	next.Lines = append(next.Lines, line)
	e.state = e.recalc(next)
	// La línea devuelta lleva las cifras ya derivadas.
	return e.state.Lines[len(e.state.Lines)-1], nil
}

// UpdateLine aplica una actualización parcial a la línea en el índice dado.
func (e *Editor) UpdateLine(index int, patch LinePatch) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	if index < 0 || index >= len(e.state.Lines) {
		return domain.ErrLineNotFound
	}
	next := e.state.Clone()
	applyLinePatch(&next.Lines[index], &patch)
	e.state = e.recalc(next)
	return nil
}

// RemoveLine elimina la línea en el índice dado.
func (e *Editor) RemoveLine(index int) error {
	return e.RemoveLines([]int{index})
}

// RemoveLines elimina varias líneas por índice de forma atómica. Los
// índices se eliminan en orden descendente para que las eliminaciones no
// invaliden los índices restantes.
func (e *Editor) RemoveLines(indices []int) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(e.state.Lines) {
			return domain.ErrLineNotFound
		}
	}
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	next := e.state.Clone()
	for i, idx := range sorted {
		if i > 0 && idx == sorted[i-1] {
			continue // índice duplicado
		}
		next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
	}
	e.state = e.recalc(next)
	return nil
}

// ReorderLines mueve la línea de from a to conservando el orden relativo de
// las demás.
func (e *Editor) ReorderLines(from, to int) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	n := len(e.state.Lines)
	if from < 0 || from >= n || to < 0 || to >= n {
		return domain.ErrLineNotFound
	}
	if from == to {
		return nil
	}
	next := e.state.Clone()
	line := next.Lines[from]
	next.Lines = append(next.Lines[:from], next.Lines[from+1:]...)
	next.Lines = append(next.Lines[:to], append([]entity.LineItem{line}, next.Lines[to:]...)...)
	e.state = e.recalc(next)
	return nil
}

// SetCharge inserta o actualiza un cargo si amount > 0, o lo elimina si
// amount vuelve a 0. Al insertar toma etiqueta y tasa de IVA por defecto de
// la configuración.
func (e *Editor) SetCharge(key string, amount decimal.Decimal) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	ct, ok := e.cfg.ChargeType(key)
	if !ok {
		return domain.ErrUnknownChargeType
	}

	next := e.state.Clone()
	_, idx := next.FindCharge(key)
	if !amount.IsPositive() {
		// Cargo en cero se considera ausente y se poda.
		if idx >= 0 {
			next.Charges = append(next.Charges[:idx], next.Charges[idx+1:]...)
			e.state = e.recalc(next)
		}
		return nil
	}
	if idx >= 0 {
		next.Charges[idx].Amount = amount
	} else {
		next.Charges = append(next.Charges, entity.Charge{
			Key:     ct.Key,
			Label:   ct.Label,
			Amount:  amount,
			VatRate: ct.DefaultVatRate,
		})
	}
	e.state = e.recalc(next)
	return nil
}

// SetDiscount fija el descuento a nivel de documento.
func (e *Editor) SetDiscount(d entity.Discount) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	if d.Type != entity.DiscountTypeAmount && d.Type != entity.DiscountTypePercent {
		return domain.ErrInvalidInput
	}
	next := e.state.Clone()
	next.Discount = d
	e.state = e.recalc(next)
	return nil
}

// SetNotes aplica una actualización parcial de notas.
func (e *Editor) SetNotes(patch NotesPatch) error {
	if !e.state.IsMutable() {
		return domain.ErrLocked
	}
	next := e.state.Clone()
	setString(&next.Notes.CustomerNotes, patch.CustomerNotes)
	setString(&next.Notes.InternalNotes, patch.InternalNotes)
	setString(&next.Notes.Terms, patch.Terms)
	e.state = e.recalc(next)
	return nil
}

// Reset vuelve al estado vacío derivado de la configuración y descarta el
// snapshot de siembra.
func (e *Editor) Reset() {
	e.seed = nil
	e.state = e.recalc(emptyState(e.cfg))
}

func (e *Editor) recalc(doc entity.DocumentState) entity.DocumentState {
	return document.Apply(doc, document.Calculate(doc, e.opts))
}

// emptyState documento vacío a partir de los valores por defecto de la
// configuración; party.id queda sin seleccionar.
func emptyState(cfg *formconfig.Config) entity.DocumentState {
	d := cfg.Defaults
	return entity.DocumentState{
		Header: entity.Header{
			Date:          time.Now().Format("2006-01-02"),
			Currency:      d.Currency,
			ExchangeRate:  d.ExchangeRate,
			PaymentTerms:  d.PaymentTerms,
			PlaceOfSupply: d.PlaceOfSupply,
		},
		Party:    entity.Party{Role: cfg.PartyRole},
		Lines:    []entity.LineItem{},
		Charges:  []entity.Charge{},
		Discount: entity.Discount{Type: entity.DiscountTypeAmount},
		Meta:     entity.Meta{Status: d.Status},
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyLinePatch(line *entity.LineItem, patch *LinePatch) {
	if patch == nil {
		return
	}
	if patch.ProductID != nil {
		pid := *patch.ProductID
		line.ProductID = &pid
	}
	setString(&line.ProductName, patch.ProductName)
	setString(&line.Description, patch.Description)
	setString(&line.Unit, patch.Unit)
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.Rate != nil {
		line.Rate = *patch.Rate
	}
	if patch.VatRate != nil {
		line.VatRate = *patch.VatRate
	}
	if patch.DiscountPercent != nil {
		line.DiscountPercent = *patch.DiscountPercent
	}
}
