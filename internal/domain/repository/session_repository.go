package repository

import "github.com/jhoicas/agromercado-api/internal/domain/entity"

// SessionRepository define el puerto para el puntero de sesión persistido.
// El modelo es de usuario único: un solo puntero "usuario actual", no hay
// sesiones concurrentes.
type SessionRepository interface {
	// Current devuelve el usuario de la sesión o nil si no hay sesión.
	Current() (*entity.User, error)
	Set(user *entity.User) error
	Clear() error
}
