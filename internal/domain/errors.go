package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrLocked              = errors.New("documento bloqueado")
	ErrLineNotFound        = errors.New("línea de detalle no encontrada")
	ErrUnknownChargeType   = errors.New("tipo de cargo no habilitado")
	ErrUnknownDocumentType = errors.New("tipo de documento desconocido")
	ErrInvalidConfig       = errors.New("configuración de documento inválida")
)
