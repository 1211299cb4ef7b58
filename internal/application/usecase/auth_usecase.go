package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

// AuthUseCase casos de uso de identidad y sesión: registro, login, logout y
// perfil. La sesión es un puntero único persistido: no hay tokens ni
// sesiones concurrentes, y las credenciales se comparan en texto plano (demo).
type AuthUseCase struct {
	users   repository.UserRepository
	session repository.SessionRepository
}

// NewAuthUseCase construye el caso de uso con sus puertos de persistencia.
func NewAuthUseCase(users repository.UserRepository, session repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{users: users, session: session}
}

// Register crea un usuario y lo deja como sesión actual. Devuelve
// ErrEmailAlreadyExists si el email ya está tomado (case-insensitive) y
// ErrInvalidInput si falta nombre, email, password o el rol no es válido.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	if err := uc.session.Set(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email (case-insensitive) y password (comparación exacta) y
// apunta la sesión al usuario. Devuelve ErrInvalidCredentials si no coinciden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.session.Set(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Current devuelve el usuario de la sesión o nil si no hay sesión.
func (uc *AuthUseCase) Current() (*entity.User, error) {
	return uc.session.Current()
}

// Logout borra el puntero de sesión.
func (uc *AuthUseCase) Logout() error {
	return uc.session.Clear()
}

// UpdateProfile sobrescribe nombre y/o password del usuario en sesión
// (campos vacíos se conservan) y re-apunta la sesión al registro actualizado.
// Devuelve ErrNoSession sin sesión y ErrNotFound si el usuario ya no existe
// en el almacén.
func (uc *AuthUseCase) UpdateProfile(in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	current, err := uc.session.Current()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNoSession
	}
	user, err := uc.users.GetByID(current.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Password != "" {
		user.Password = in.Password
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	if err := uc.session.Set(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
