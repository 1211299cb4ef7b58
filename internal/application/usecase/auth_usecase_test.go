package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
)

func TestAuth_RegisterYLogin(t *testing.T) {
	e := newEnv(t)

	created, err := e.auth.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto",
		Role:     entity.RoleConsumer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	logged, err := e.auth.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err, "registrarse y loguearse con las mismas credenciales debe funcionar")
	assert.Equal(t, created.ID, logged.ID, "login devuelve el mismo usuario registrado")
}

func TestAuth_Register_CamposVacios(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"sin nombre", dto.RegisterRequest{Email: "a@x.com", Password: "pw", Role: entity.RoleConsumer}},
		{"sin email", dto.RegisterRequest{Name: "Ana", Password: "pw", Role: entity.RoleConsumer}},
		{"sin password", dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Role: entity.RoleConsumer}},
		{"rol inválido", dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "pw", Role: "admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.auth.Register(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAuth_Register_EmailDuplicadoCaseInsensitive(t *testing.T) {
	e := newEnv(t)
	e.registerConsumer(t, "Ana", "Ana@Example.com")

	_, err := e.auth.Register(dto.RegisterRequest{
		Name:     "Otra Ana",
		Email:    "ana@example.COM",
		Password: "pw",
		Role:     entity.RoleConsumer,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"emails que difieren solo en mayúsculas son el mismo email")
}

func TestAuth_Login_CredencialesInvalidas(t *testing.T) {
	e := newEnv(t)
	e.registerConsumer(t, "Ana", "ana@example.com")

	_, err := e.auth.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = e.auth.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuth_Logout_LimpiaSesion(t *testing.T) {
	e := newEnv(t)
	e.registerConsumer(t, "Ana", "ana@example.com")

	require.NoError(t, e.auth.Logout())

	actor, err := e.auth.Current()
	require.NoError(t, err)
	assert.Nil(t, actor, "después del logout no hay sesión")
}

func TestAuth_UpdateProfile(t *testing.T) {
	e := newEnv(t)
	e.registerConsumer(t, "Ana", "ana@example.com")

	out, err := e.auth.UpdateProfile(dto.UpdateProfileRequest{Name: "Ana María", Password: "nueva"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)

	// El password cambió pero el nombre vacío del siguiente update se conserva
	_, err = e.auth.UpdateProfile(dto.UpdateProfileRequest{})
	require.NoError(t, err)

	logged, err := e.auth.Login(dto.LoginRequest{Email: "ana@example.com", Password: "nueva"})
	require.NoError(t, err, "el login usa el password actualizado")
	assert.Equal(t, "Ana María", logged.Name, "campos vacíos en el update no borran nada")
}

func TestAuth_UpdateProfile_SinSesion(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.UpdateProfile(dto.UpdateProfileRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuth_UpdateProfile_UsuarioDesaparecido(t *testing.T) {
	e := newEnv(t)
	e.registerConsumer(t, "Ana", "ana@example.com")

	// Simula un almacén reseteado con la sesión aún apuntando al usuario viejo
	require.NoError(t, e.store.Save("users", []*entity.User{}))

	_, err := e.auth.UpdateProfile(dto.UpdateProfileRequest{Name: "Ana María"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
