package document

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// ValidationError alias del tipo compartido del esquema de configuración.
type ValidationError = formconfig.ValidationError

// Códigos de error de validación de documento.
const (
	CodeRequired                 = "REQUIRED"
	CodePositiveNumber           = "POSITIVE_NUMBER"
	CodeNonNegative              = "NON_NEGATIVE"
	CodeInvalidDate              = "INVALID_DATE"
	CodeInvalidEmail             = "INVALID_EMAIL"
	CodePercentRange             = "PERCENT_RANGE"
	CodeInvalidExchangeRate      = "INVALID_EXCHANGE_RATE"
	CodePartyRequired            = "PARTY_REQUIRED"
	CodeLineProductRequired      = "LINE_PRODUCT_REQUIRED"
	CodeNoLineItems              = "NO_LINE_ITEMS"
	CodeDueDateBeforeDate        = "DUE_DATE_BEFORE_DATE"
	CodeInvalidDiscountPercent   = "INVALID_DISCOUNT_PERCENT"
	CodeDiscountExceedsSubtotal  = "DISCOUNT_EXCEEDS_SUBTOTAL"
	CodeZeroTotal                = "ZERO_TOTAL"
	CodeDocumentLocked           = "DOCUMENT_LOCKED"
	CodeInvalidStatusForApproval = "INVALID_STATUS_FOR_APPROVAL"
)

// ValidationResult veredicto y lista estructurada de errores. Las capas se
// ejecutan en orden fijo y acumulan sin cortocircuito: una sola pasada
// presenta todos los problemas a la vez.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// parseDate acepta fecha ISO corta o timestamp RFC3339.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Validate ejecuta las capas de validación sobre el documento: campos de
// cabecera según configuración, contraparte, líneas, cargos, reglas entre
// campos, reglas de negocio y, por último, los validadores suministrados por
// la configuración. Nunca muta el estado que comprueba.
func Validate(doc entity.DocumentState, cfg *formconfig.Config, custom []formconfig.CustomValidator) ValidationResult {
	var errs []ValidationError
	errs = append(errs, validateHeader(doc, cfg)...)
	errs = append(errs, validateParty(doc, cfg)...)
	errs = append(errs, validateLines(doc, cfg)...)
	errs = append(errs, validateCharges(doc, cfg)...)
	errs = append(errs, validateCrossFields(doc, cfg)...)
	errs = append(errs, validateBusinessRules(doc)...)
	for _, fn := range custom {
		errs = append(errs, fn(doc, cfg)...)
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// headerValue valor textual de un campo de cabecera por clave de descriptor.
func headerValue(h entity.Header, key string) string {
	switch key {
	case "docNumber":
		return h.DocNumber
	case "date":
		return h.Date
	case "dueDate":
		return h.DueDate
	case "currency":
		return h.Currency
	case "exchangeRate":
		if h.ExchangeRate.IsZero() {
			return ""
		}
		return h.ExchangeRate.String()
	case "reference":
		return h.Reference
	case "paymentTerms":
		return h.PaymentTerms
	case "placeOfSupply":
		return h.PlaceOfSupply
	case "vendorInvoiceNumber":
		return h.VendorInvoiceNumber
	case "vatCategory":
		return h.VatCategory
	case "deliveryTerms":
		return h.DeliveryTerms
	default:
		return ""
	}
}

func validateHeader(doc entity.DocumentState, cfg *formconfig.Config) []ValidationError {
	var errs []ValidationError

	for _, f := range cfg.EffectiveHeaderFields() {
		if !f.Required || !f.Visible {
			continue
		}
		value := headerValue(doc.Header, f.Key)
		if value == "" {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   f.Key,
				Message: fmt.Sprintf("%s is required", f.Label),
				Code:    CodeRequired,
			})
			continue
		}
		switch f.Type {
		case formconfig.FieldDate:
			if _, ok := parseDate(value); !ok {
				errs = append(errs, ValidationError{
					Level:   formconfig.LevelField,
					Field:   f.Key,
					Message: fmt.Sprintf("%s must be a valid date", f.Label),
					Code:    CodeInvalidDate,
				})
			}
		case formconfig.FieldNumber:
			n, err := decimal.NewFromString(value)
			if err != nil || !n.IsPositive() {
				errs = append(errs, ValidationError{
					Level:   formconfig.LevelField,
					Field:   f.Key,
					Message: fmt.Sprintf("%s must be a positive number", f.Label),
					Code:    CodePositiveNumber,
				})
			}
		}
	}

	if cfg.Features.EnableExchangeRate && !doc.Header.ExchangeRate.IsPositive() {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelField,
			Field:   "exchangeRate",
			Message: "Exchange rate must be greater than 0",
			Code:    CodeInvalidExchangeRate,
		})
	}

	return errs
}

func validateParty(doc entity.DocumentState, cfg *formconfig.Config) []ValidationError {
	var errs []ValidationError

	if doc.Party.ID == nil {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelField,
			Field:   "party",
			Message: fmt.Sprintf("%s must be selected", cfg.PartyLabel),
			Code:    CodePartyRequired,
		})
	}
	if doc.Party.Email != "" && !emailRe.MatchString(doc.Party.Email) {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelField,
			Field:   "party.email",
			Message: "Email must be a valid email address",
			Code:    CodeInvalidEmail,
		})
	}

	return errs
}

func validateLines(doc entity.DocumentState, cfg *formconfig.Config) []ValidationError {
	var errs []ValidationError

	// Cero líneas es un error de negocio y corta solo el resto de esta capa.
	if len(doc.Lines) == 0 {
		return []ValidationError{{
			Level:   formconfig.LevelBusiness,
			Message: "At least one line item is required",
			Code:    CodeNoLineItems,
		}}
	}

	for i, line := range doc.Lines {
		prefix := fmt.Sprintf("Line %d", i+1)
		field := func(col string) string { return fmt.Sprintf("lines[%d].%s", i, col) }

		if line.ProductName == "" {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   field("productName"),
				Message: prefix + ": Product name is required",
				Code:    CodeLineProductRequired,
			})
		}
		if !line.Quantity.IsPositive() {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   field("quantity"),
				Message: prefix + ": Quantity must be a positive number",
				Code:    CodePositiveNumber,
			})
		}
		if !line.Rate.IsPositive() {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   field("rate"),
				Message: prefix + ": Rate must be a positive number",
				Code:    CodePositiveNumber,
			})
		}
		if cfg.Features.EnableLineVat && !percentInRange(line.VatRate) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   field("vatRate"),
				Message: prefix + ": VAT rate must be between 0 and 100",
				Code:    CodePercentRange,
			})
		}
		if cfg.Features.EnableLineDiscount && line.DiscountPercent.IsPositive() && !percentInRange(line.DiscountPercent) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   field("discountPercent"),
				Message: prefix + ": Discount must be between 0 and 100",
				Code:    CodePercentRange,
			})
		}
	}

	return errs
}

func percentInRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(oneHundred)
}

func validateCharges(doc entity.DocumentState, cfg *formconfig.Config) []ValidationError {
	if !cfg.Features.EnableAdditionalCharges {
		return nil
	}

	var errs []ValidationError
	for i, c := range doc.Charges {
		prefix := fmt.Sprintf("Charge %d", i+1)
		if c.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   fmt.Sprintf("charges[%d].amount", i),
				Message: prefix + ": Amount cannot be negative",
				Code:    CodeNonNegative,
			})
		}
		if cfg.Features.EnableVat && !percentInRange(c.VatRate) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelField,
				Field:   fmt.Sprintf("charges[%d].vatRate", i),
				Message: prefix + ": VAT rate must be between 0 and 100",
				Code:    CodePercentRange,
			})
		}
	}
	return errs
}

func validateCrossFields(doc entity.DocumentState, cfg *formconfig.Config) []ValidationError {
	var errs []ValidationError

	if cfg.Features.EnableDueDate && doc.Header.DueDate != "" {
		date, okDate := parseDate(doc.Header.Date)
		due, okDue := parseDate(doc.Header.DueDate)
		if okDate && okDue && due.Before(date) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelCrossField,
				Field:   "dueDate",
				Message: "Due date cannot be before document date",
				Code:    CodeDueDateBeforeDate,
			})
		}
	}

	if cfg.Features.EnableInvoiceDiscount && doc.Discount.Value.IsPositive() {
		if doc.Discount.Type == entity.DiscountTypePercent && doc.Discount.Value.GreaterThan(oneHundred) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelCrossField,
				Field:   "discount",
				Message: "Discount percentage cannot exceed 100%",
				Code:    CodeInvalidDiscountPercent,
			})
		}
		if doc.Discount.Type == entity.DiscountTypeAmount && doc.Discount.Value.GreaterThan(doc.Totals.Subtotal) {
			errs = append(errs, ValidationError{
				Level:   formconfig.LevelCrossField,
				Field:   "discount",
				Message: "Discount amount cannot exceed subtotal",
				Code:    CodeDiscountExceedsSubtotal,
			})
		}
	}

	return errs
}

// validateBusinessRules comprueba reglas de negocio del documento completo.
// El conflicto de bloqueo se reporta para que el host lo presente; la
// inmutabilidad en sí la hace cumplir el contenedor de estado.
func validateBusinessRules(doc entity.DocumentState) []ValidationError {
	var errs []ValidationError

	if !doc.Totals.Total.IsPositive() {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelBusiness,
			Message: "Document total must be greater than zero",
			Code:    CodeZeroTotal,
		})
	}
	if doc.Meta.Status != entity.StatusDraft && doc.Meta.IsLocked {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelBusiness,
			Message: "Cannot modify a locked document",
			Code:    CodeDocumentLocked,
		})
	}

	return errs
}

// CanSaveDraft validación relajada para guardar como borrador: solo fecha y
// contraparte.
func CanSaveDraft(doc entity.DocumentState, cfg *formconfig.Config) ValidationResult {
	var errs []ValidationError

	if doc.Header.Date == "" {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelField,
			Field:   "date",
			Message: "Date is required",
			Code:    CodeRequired,
		})
	}
	if doc.Party.ID == nil {
		errs = append(errs, ValidationError{
			Level:   formconfig.LevelField,
			Field:   "party",
			Message: fmt.Sprintf("%s must be selected", cfg.PartyLabel),
			Code:    CodePartyRequired,
		})
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// CanApprove validación completa más comprobaciones propias de la
// aprobación: el documento debe estar en borrador y tener total positivo.
// La condición de total cero ya la reporta la capa de negocio, por lo que
// no se duplica.
func CanApprove(doc entity.DocumentState, cfg *formconfig.Config) ValidationResult {
	res := Validate(doc, cfg, cfg.Overrides.CustomValidators)

	if doc.Meta.Status != entity.StatusDraft {
		res.Errors = append(res.Errors, ValidationError{
			Level:   formconfig.LevelBusiness,
			Message: "Only draft documents can be approved",
			Code:    CodeInvalidStatusForApproval,
		})
	}

	res.IsValid = len(res.Errors) == 0
	return res
}
