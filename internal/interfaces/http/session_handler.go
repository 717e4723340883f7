package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/adapter"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/editor"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/session"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
)

// SessionHandler maneja las sesiones de edición de documentos.
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Create abre una sesión de edición, vacía o sembrada desde un documento.
// POST /api/sessions
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DocumentType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "documentType requerido"})
	}

	var seed *entity.DocumentState
	if in.Document != nil {
		ad, err := adapter.ForType(in.DocumentType)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipo de documento desconocido"})
		}
		doc := ad.ToForm(in.Document)
		seed = &doc
	}

	sess, err := h.store.Create(in.DocumentType, seed)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDocumentType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipo de documento desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(sess))
}

// Get devuelve el estado actual de la sesión.
// GET /api/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	var out dto.SessionResponse
	err := h.store.Read(c.Params("id"), func(sess *session.Session) error {
		out = sessionResponse(sess)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(out)
}

// Delete cierra la sesión.
// DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("id")); err != nil {
		return sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateHeader aplica una actualización parcial de cabecera.
// PUT /api/sessions/:id/header
func (h *SessionHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.HeaderUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.SetHeader(editor.HeaderPatch{
			DocNumber:           in.DocNumber,
			Date:                in.Date,
			DueDate:             in.DueDate,
			Currency:            in.Currency,
			ExchangeRate:        in.ExchangeRate,
			Reference:           in.Reference,
			PaymentTerms:        in.PaymentTerms,
			PlaceOfSupply:       in.PlaceOfSupply,
			VendorInvoiceNumber: in.VendorInvoiceNumber,
			VatCategory:         in.VatCategory,
			DeliveryTerms:       in.DeliveryTerms,
		})
	})
}

// UpdateParty reemplaza la contraparte seleccionada.
// PUT /api/sessions/:id/party
func (h *SessionHandler) UpdateParty(c *fiber.Ctx) error {
	var in dto.PartyUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.SetParty(entity.Party{
			ID:      in.ID,
			Role:    in.Role,
			Name:    in.Name,
			Company: in.Company,
			TaxID:   in.TRN,
			Email:   in.Email,
			Phone:   in.Phone,
			Address: entity.Address{
				Street:     in.Address.Street,
				City:       in.Address.City,
				Region:     in.Address.Region,
				Country:    in.Address.Country,
				PostalCode: in.Address.PostalCode,
			},
		})
	})
}

// AddLine agrega una línea nueva (patch opcional en el cuerpo).
// POST /api/sessions/:id/lines
func (h *SessionHandler) AddLine(c *fiber.Ctx) error {
	patch, err := parseLinePatch(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		_, err := e.AddLine(patch)
		return err
	})
}

// UpdateLine actualiza la línea en el índice dado.
// PUT /api/sessions/:id/lines/:index
func (h *SessionHandler) UpdateLine(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	patch, err := parseLinePatch(c)
	if err != nil || patch == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.UpdateLine(idx, *patch)
	})
}

// RemoveLine elimina la línea en el índice dado.
// DELETE /api/sessions/:id/lines/:index
func (h *SessionHandler) RemoveLine(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.RemoveLine(idx)
	})
}

// RemoveLines elimina varias líneas de forma atómica.
// POST /api/sessions/:id/lines/remove
func (h *SessionHandler) RemoveLines(c *fiber.Ctx) error {
	var in dto.RemoveLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.RemoveLines(in.Indices)
	})
}

// ReorderLines mueve una línea de posición.
// POST /api/sessions/:id/lines/reorder
func (h *SessionHandler) ReorderLines(c *fiber.Ctx) error {
	var in dto.ReorderLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.ReorderLines(in.From, in.To)
	})
}

// SetCharge fija el monto de un cargo adicional; cero lo elimina.
// PUT /api/sessions/:id/charges/:key
func (h *SessionHandler) SetCharge(c *fiber.Ctx) error {
	var in dto.ChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	key := c.Params("key")
	return h.mutate(c, func(e *editor.Editor) error {
		return e.SetCharge(key, in.Amount)
	})
}

// SetDiscount fija el descuento a nivel de documento.
// PUT /api/sessions/:id/discount
func (h *SessionHandler) SetDiscount(c *fiber.Ctx) error {
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.SetDiscount(entity.Discount{Type: in.Type, Value: in.Value})
	})
}

// SetNotes aplica una actualización parcial de notas.
// PUT /api/sessions/:id/notes
func (h *SessionHandler) SetNotes(c *fiber.Ctx) error {
	var in dto.NotesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.mutate(c, func(e *editor.Editor) error {
		return e.SetNotes(editor.NotesPatch{
			CustomerNotes: in.CustomerNotes,
			InternalNotes: in.InternalNotes,
			Terms:         in.Terms,
		})
	})
}

// Reset descarta el estado de la sesión y vuelve al documento vacío.
// POST /api/sessions/:id/reset
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	return h.mutate(c, func(e *editor.Editor) error {
		e.Reset()
		return nil
	})
}

// Totals devuelve los totales derivados vigentes.
// GET /api/sessions/:id/totals
func (h *SessionHandler) Totals(c *fiber.Ctx) error {
	var out dto.TotalsPayload
	err := h.store.Read(c.Params("id"), func(sess *session.Session) error {
		out = totalsPayload(sess.Editor.Document().Totals)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(out)
}

// Validation devuelve el resultado de validación completo vigente.
// GET /api/sessions/:id/validation
func (h *SessionHandler) Validation(c *fiber.Ctx) error {
	var out document.ValidationResult
	err := h.store.Read(c.Params("id"), func(sess *session.Session) error {
		out = sess.Editor.Validation()
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(out)
}

// mutate ejecuta una mutación sobre la sesión y responde con el estado
// resultante. La respuesta se arma dentro del lock de escritura: fuera de
// él otro request podría estar mutando el mismo editor. También centraliza
// el mapeo de errores de dominio a HTTP.
func (h *SessionHandler) mutate(c *fiber.Ctx, fn func(e *editor.Editor) error) error {
	var out dto.SessionResponse
	err := h.store.Update(c.Params("id"), func(sess *session.Session) error {
		if err := fn(sess.Editor); err != nil {
			return err
		}
		out = sessionResponse(sess)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(out)
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	case errors.Is(err, domain.ErrLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOCUMENT_LOCKED", Message: "documento bloqueado"})
	case errors.Is(err, domain.ErrLineNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LINE_NOT_FOUND", Message: "línea no encontrada"})
	case errors.Is(err, domain.ErrUnknownChargeType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_CHARGE", Message: "tipo de cargo desconocido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func sessionResponse(sess *session.Session) dto.SessionResponse {
	ad, _ := adapter.ForType(sess.DocType)
	return dto.SessionResponse{
		ID:           sess.ID,
		DocumentType: sess.DocType,
		IsDirty:      sess.Editor.IsDirty(),
		Document:     ad.FromForm(sess.Editor.Document()),
		Validation:   sess.Editor.Validation(),
	}
}

func totalsPayload(t entity.Totals) dto.TotalsPayload {
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

// parseLinePatch interpreta el cuerpo como LineRequest; cuerpo vacío
// devuelve patch nil (línea con puros valores por defecto).
func parseLinePatch(c *fiber.Ctx) (*editor.LinePatch, error) {
	if len(c.Body()) == 0 {
		return nil, nil
	}
	var in dto.LineRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, err
	}
	return &editor.LinePatch{
		ProductID:       in.ProductID,
		ProductName:     in.ProductName,
		Description:     in.Description,
		Unit:            in.Unit,
		Quantity:        in.Quantity,
		Rate:            in.Rate,
		VatRate:         in.VatRate,
		DiscountPercent: in.DiscountPercent,
	}, nil
}
