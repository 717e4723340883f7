package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/adapter"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/dto"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

// DocumentHandler expone los motores puros sin sesión: cálculo y validación
// de un documento enviado en el cuerpo.
type DocumentHandler struct{}

// NewDocumentHandler construye el handler.
func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

// Types lista los tipos de documento soportados.
// GET /api/documents/types
func (h *DocumentHandler) Types(c *fiber.Ctx) error {
	var types []string
	for _, cfg := range formconfig.All() {
		types = append(types, cfg.DocumentType)
	}
	return c.JSON(fiber.Map{"types": types})
}

// Calculate deriva cifras y totales del documento recibido y devuelve el
// payload completo con los montos aplicados.
// POST /api/documents/:type/calculate
func (h *DocumentHandler) Calculate(c *fiber.Ctx) error {
	ad, body, ok := h.parse(c)
	if !ok {
		return nil
	}
	doc := ad.ToForm(body)
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))
	return c.JSON(ad.FromForm(doc))
}

// Validate ejecuta la validación completa sobre el documento recibido.
// POST /api/documents/:type/validate
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	ad, body, ok := h.parse(c)
	if !ok {
		return nil
	}
	cfg, cfgErr := formconfig.ForType(ad.DocumentType())
	if cfgErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: cfgErr.Error()})
	}
	doc := ad.ToForm(body)
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))
	return c.JSON(document.Validate(doc, cfg, cfg.Overrides.CustomValidators))
}

// parse resuelve el adaptador y el cuerpo; si algo falla escribe la
// respuesta de error y devuelve ok en falso.
func (h *DocumentHandler) parse(c *fiber.Ctx) (adapter.Adapter, map[string]any, bool) {
	ad, err := adapter.ForType(c.Params("type"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipo de documento desconocido"})
		return nil, nil, false
	}
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return nil, nil, false
	}
	return ad, body, true
}
