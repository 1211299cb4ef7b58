package localstore

import (
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository: persiste el
// puntero único de "usuario actual" en la colección currentUser.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador de persistencia para la sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Current devuelve el usuario de la sesión o nil si no hay sesión.
func (r *SessionRepo) Current() (*entity.User, error) {
	var user *entity.User
	if err := r.store.Load(CollectionSession, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// Set apunta la sesión al usuario dado.
func (r *SessionRepo) Set(user *entity.User) error {
	return r.store.Save(CollectionSession, user)
}

// Clear borra el puntero de sesión.
func (r *SessionRepo) Clear() error {
	return r.store.Delete(CollectionSession)
}
