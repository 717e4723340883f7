// Package adapter implementa los mapeos bidireccionales puros entre el
// estado canónico y la representación externa de cada tipo de documento.
// El formato externo no es de fiar: las claves pueden llegar en camelCase o
// snake_case (se prefiere camelCase), los números pueden venir como string y
// los bloques de detalle de contraparte como objeto o como string JSON. Todo
// campo malformado degrada a un valor seguro (0, objeto vacío) en lugar de
// abortar la transformación: un registro histórico parcialmente corrupto
// debe seguir siendo visible y editable.
package adapter

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// Adapter contrato por tipo de documento: ToForm transforma la respuesta
// externa al estado canónico y FromForm produce el payload de persistencia.
type Adapter interface {
	DocumentType() string
	ToForm(resp map[string]any) entity.DocumentState
	FromForm(doc entity.DocumentState) any
}

// ForType devuelve el adaptador del tipo de documento indicado.
func ForType(documentType string) (Adapter, error) {
	switch documentType {
	case formconfig.TypeInvoice:
		return InvoiceAdapter{}, nil
	case formconfig.TypeQuotation:
		return QuotationAdapter{}, nil
	case formconfig.TypePurchaseOrder:
		return PurchaseOrderAdapter{}, nil
	case formconfig.TypeVendorBill:
		return VendorBillAdapter{}, nil
	default:
		return nil, domain.ErrUnknownDocumentType
	}
}

// snakeCase convierte una clave camelCase a snake_case.
func snakeCase(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pick busca la clave camelCase y cae a su variante snake_case. Este orden
// de precedencia es el contrato con la pasarela de API, que convierte entre
// ambas convenciones según el origen de la respuesta.
func pick(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok && v != nil {
		return v, true
	}
	if v, ok := m[snakeCase(key)]; ok && v != nil {
		return v, true
	}
	return nil, false
}

// getString valor textual con fallback a cadena vacía.
func getString(m map[string]any, key string) string {
	v, ok := pick(m, key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// getDecimal número en cualquiera de las formas que produce el transporte
// JSON (float64, string, json.Number, int). Lo no numérico degrada a 0.
func getDecimal(m map[string]any, key string) decimal.Decimal {
	v, ok := pick(m, key)
	if !ok {
		return decimal.Zero
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// getID identificador numérico opcional; 0 o ausente significa nil.
func getID(m map[string]any, key string) *int64 {
	d := getDecimal(m, key)
	if d.IsZero() {
		return nil
	}
	id := d.IntPart()
	return &id
}

// getBool booleano tolerante.
func getBool(m map[string]any, key string) bool {
	v, ok := pick(m, key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// getObject bloque anidado que puede llegar ya parseado o como string JSON.
// JSON inválido degrada a objeto vacío.
func getObject(m map[string]any, key string) map[string]any {
	v, ok := pick(m, key)
	if !ok {
		return map[string]any{}
	}
	switch o := v.(type) {
	case map[string]any:
		return o
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(o), &parsed); err == nil && parsed != nil {
			return parsed
		}
	}
	return map[string]any{}
}

// getSlice lista de objetos; cualquier otra cosa degrada a lista vacía.
func getSlice(m map[string]any, key string) []map[string]any {
	v, ok := pick(m, key)
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if o, ok := item.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}
