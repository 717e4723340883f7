package formconfig

import (
	"fmt"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/logger"
)

// Severidades de los hallazgos del validador de configuración.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Reglas comprobadas por el validador estructural.
const (
	RuleMissingVersion          = "MISSING_VERSION"
	RuleMissingIdentity         = "MISSING_IDENTITY"
	RuleMissingParty            = "MISSING_PARTY"
	RuleMissingFeatures         = "MISSING_FEATURES"
	RuleMissingDefaults         = "MISSING_DEFAULTS"
	RuleInvalidHeaderField      = "INVALID_HEADER_FIELD"
	RuleSelectWithoutOptions    = "SELECT_WITHOUT_OPTIONS"
	RuleHiddenRequiredNoDefault = "HIDDEN_REQUIRED_WITHOUT_DEFAULT"
	RuleInvalidLineColumn       = "INVALID_LINE_COLUMN"
	RuleIncompatibleFlags       = "INCOMPATIBLE_FLAGS"
	RuleDueDateNoTerms          = "DUE_DATE_WITHOUT_PAYMENT_TERMS"
	RuleVatFlagsMismatch        = "VAT_FLAGS_MISMATCH"
	RuleMissingChargeTypes      = "MISSING_CHARGE_TYPES"
)

// Issue hallazgo del validador de configuración.
type Issue struct {
	Severity string `json:"severity"` // error | warning
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
}

// Claves admitidas para campos de cabecera.
var allowedHeaderKeys = map[string]bool{
	"docNumber": true, "date": true, "dueDate": true,
	"currency": true, "exchangeRate": true, "reference": true,
	"paymentTerms": true, "placeOfSupply": true,
	"vendorInvoiceNumber": true, "vatCategory": true, "deliveryTerms": true,
}

// Claves admitidas para columnas de líneas.
var allowedColumnKeys = map[string]bool{
	"productName": true, "description": true, "quantity": true,
	"unit": true, "rate": true, "amount": true,
	"vatRate": true, "vatAmount": true,
	"discountPercent": true, "discountAmount": true,
}

var allowedAligns = map[string]bool{"left": true, "center": true, "right": true}

var allowedFormats = map[string]bool{"currency": true, "number": true, "percent": true}

// Validate comprueba la consistencia estructural de una configuración y
// devuelve la lista de hallazgos. Con production=true devuelve una lista
// vacía sin evaluar nada: la validación de configuración es una ayuda de
// desarrollo, no un costo de runtime.
func Validate(cfg *Config, production bool) []Issue {
	if production {
		return nil
	}

	var issues []Issue
	errorf := func(rule, path, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityError, Rule: rule, Path: path, Message: fmt.Sprintf(format, args...)})
	}
	warnf := func(rule, path, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityWarning, Rule: rule, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	// 1. Versión del esquema.
	if cfg.Version < 1 {
		errorf(RuleMissingVersion, "version", "version must be present and >= 1")
	}

	// 2. Identidad.
	if cfg.DocumentType == "" {
		errorf(RuleMissingIdentity, "documentType", "documentType must not be empty")
	}
	if cfg.DocumentLabel == "" {
		errorf(RuleMissingIdentity, "documentLabel", "documentLabel must not be empty")
	}
	if cfg.NumberPrefix == "" {
		errorf(RuleMissingIdentity, "numberPrefix", "numberPrefix must not be empty")
	}

	// 3. Contraparte.
	if cfg.PartyLabel == "" {
		errorf(RuleMissingParty, "partyLabel", "partyLabel must not be empty")
	}
	if cfg.PartyRole == "" {
		errorf(RuleMissingParty, "partyRole", "partyRole must not be empty")
	}

	// 4. Flags de funcionalidades.
	if cfg.Features == nil {
		errorf(RuleMissingFeatures, "features", "features record must be present")
	}

	// 5. Valores por defecto.
	if cfg.Defaults == nil {
		errorf(RuleMissingDefaults, "defaults", "defaults record must be present")
	}

	// 6 y 7. Campos de cabecera.
	for i, f := range cfg.HeaderFields {
		path := fmt.Sprintf("headerFields[%d]", i)
		if !allowedHeaderKeys[f.Key] {
			errorf(RuleInvalidHeaderField, path, "unknown header field key %q", f.Key)
		}
		if f.Label == "" {
			errorf(RuleInvalidHeaderField, path, "header field %q has an empty label", f.Key)
		}
		if f.Type == "" {
			errorf(RuleInvalidHeaderField, path, "header field %q has no type", f.Key)
		}
		if f.Type == FieldSelect && len(f.Options) == 0 {
			errorf(RuleSelectWithoutOptions, path, "select field %q must declare at least one option", f.Key)
		}
		// Un campo oculto y obligatorio sin valor por defecto es inalcanzable
		// para el usuario: nunca podría satisfacer la validación.
		if f.Required && !f.Visible && f.DefaultValue == "" {
			errorf(RuleHiddenRequiredNoDefault, path, "hidden required field %q must carry an explicit defaultValue", f.Key)
		}
	}

	// 8. Columnas de líneas.
	for i, col := range cfg.LineColumns {
		path := fmt.Sprintf("lineColumns[%d]", i)
		if !allowedColumnKeys[col.Key] {
			errorf(RuleInvalidLineColumn, path, "unknown line column key %q", col.Key)
		}
		if col.Label == "" {
			errorf(RuleInvalidLineColumn, path, "line column %q has an empty label", col.Key)
		}
		if col.Type == "" {
			errorf(RuleInvalidLineColumn, path, "line column %q has no type", col.Key)
		}
		if !allowedAligns[col.Align] {
			errorf(RuleInvalidLineColumn, path, "line column %q has invalid align %q", col.Key, col.Align)
		}
		if col.Format != "" && !allowedFormats[col.Format] {
			errorf(RuleInvalidLineColumn, path, "line column %q has invalid format %q", col.Key, col.Format)
		}
	}

	// 9. Consistencia entre flags.
	if cfg.Features != nil {
		ff := cfg.Features
		if ff.EnableExchangeRate && !ff.EnableCurrency {
			errorf(RuleIncompatibleFlags, "features", "enableExchangeRate requires enableCurrency")
		}
		if ff.EnableDueDate && !ff.EnablePaymentTerms {
			warnf(RuleDueDateNoTerms, "features", "enableDueDate without enablePaymentTerms is unusual")
		}
		if ff.EnableLineVat != ff.EnableVat {
			warnf(RuleVatFlagsMismatch, "features", "enableLineVat should match enableVat")
		}

		// 10. Cargos adicionales habilitados sin tipos declarados.
		if ff.EnableAdditionalCharges && len(cfg.ChargeTypes) == 0 {
			errorf(RuleMissingChargeTypes, "chargeTypes", "enableAdditionalCharges requires a non-empty chargeTypes list")
		}
	}

	return issues
}

// HasErrors indica si la lista contiene al menos un hallazgo de severidad error.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidateAndLog valida la configuración y reporta los hallazgos agrupados
// por severidad. En development (production=false) devuelve ErrInvalidConfig
// si existe algún hallazgo de severidad error, para que el host aborte el
// arranque antes de que una configuración malformada llegue a los motores de
// cálculo o validación. En production no evalúa ni reporta nada.
func ValidateAndLog(cfg *Config, log *logger.Logger, production bool) error {
	issues := Validate(cfg, production)
	if len(issues) == 0 {
		return nil
	}

	var nErrors, nWarnings int
	for _, is := range issues {
		switch is.Severity {
		case SeverityError:
			nErrors++
			log.Error().
				Str("document_type", cfg.DocumentType).
				Str("rule", is.Rule).
				Str("path", is.Path).
				Msg(is.Message)
		default:
			nWarnings++
			log.Warn().
				Str("document_type", cfg.DocumentType).
				Str("rule", is.Rule).
				Str("path", is.Path).
				Msg(is.Message)
		}
	}
	log.Debug().
		Str("document_type", cfg.DocumentType).
		Int("errors", nErrors).
		Int("warnings", nWarnings).
		Msg("configuración de documento validada")

	if nErrors > 0 {
		return fmt.Errorf("%w: %s (%d errores)", domain.ErrInvalidConfig, cfg.DocumentType, nErrors)
	}
	return nil
}
