package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions *session.Store
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Motores sin estado: cálculo y validación de un documento en el cuerpo.
	docs := api.Group("/documents")
	docHandler := NewDocumentHandler()
	docs.Get("/types", docHandler.Types)
	docs.Post("/:type/calculate", docHandler.Calculate)
	docs.Post("/:type/validate", docHandler.Validate)

	// Sesiones de edición.
	sessions := api.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.Sessions)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/:id", sessionHandler.Get)
	sessions.Delete("/:id", sessionHandler.Delete)
	sessions.Put("/:id/header", sessionHandler.UpdateHeader)
	sessions.Put("/:id/party", sessionHandler.UpdateParty)
	sessions.Post("/:id/lines", sessionHandler.AddLine)
	sessions.Put("/:id/lines/:index", sessionHandler.UpdateLine)
	sessions.Delete("/:id/lines/:index", sessionHandler.RemoveLine)
	sessions.Post("/:id/lines/remove", sessionHandler.RemoveLines)
	sessions.Post("/:id/lines/reorder", sessionHandler.ReorderLines)
	sessions.Put("/:id/charges/:key", sessionHandler.SetCharge)
	sessions.Put("/:id/discount", sessionHandler.SetDiscount)
	sessions.Put("/:id/notes", sessionHandler.SetNotes)
	sessions.Post("/:id/reset", sessionHandler.Reset)
	sessions.Get("/:id/totals", sessionHandler.Totals)
	sessions.Get("/:id/validation", sessionHandler.Validation)
}
