package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables:
// el core nunca termina el proceso, la capa de presentación decide qué mostrar.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRoleNotAllowed     = errors.New("operación no permitida para este rol")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrEmptyCart          = errors.New("el carrito está vacío")
)
