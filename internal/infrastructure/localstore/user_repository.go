package localstore

import (
	"strings"

	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el almacén local.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load() ([]*entity.User, error) {
	var users []*entity.User
	if err := r.store.Load(CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create agrega un usuario a la colección.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.store.Save(CollectionUsers, users)
}

// GetByID obtiene un usuario por ID, nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email (case-insensitive), nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return r.store.Save(CollectionUsers, users)
		}
	}
	return domain.ErrNotFound
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.load()
}
