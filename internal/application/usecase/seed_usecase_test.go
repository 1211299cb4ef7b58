package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agromercado-api/internal/domain/entity"
)

func TestSeed_AlmacenVacio(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.seed.SeedIfEmpty())

	users, err := e.users.List()
	require.NoError(t, err)
	require.NotEmpty(t, users)

	hayProductor := false
	for _, u := range users {
		if u.IsProducer() {
			hayProductor = true
		}
	}
	assert.True(t, hayProductor, "la siembra garantiza al menos un productor")

	products, err := e.products.List()
	require.NoError(t, err)
	require.Len(t, products, 2, "la siembra crea dos productos de muestra")
	for _, p := range products {
		assert.True(t, p.Price.IsPositive())
		assert.Positive(t, p.Quantity)
	}
}

func TestSeed_Idempotente(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.seed.SeedIfEmpty())
	usersBefore, err := e.users.List()
	require.NoError(t, err)
	productsBefore, err := e.products.List()
	require.NoError(t, err)

	require.NoError(t, e.seed.SeedIfEmpty(), "la segunda siembra es un no-op")

	usersAfter, err := e.users.List()
	require.NoError(t, err)
	productsAfter, err := e.products.List()
	require.NoError(t, err)
	assert.Equal(t, len(usersBefore), len(usersAfter))
	assert.Equal(t, len(productsBefore), len(productsAfter))
}

func TestSeed_AlmacenConUsuariosNoSeToca(t *testing.T) {
	e := newEnv(t)
	e.registerProducer(t, "Ramón", "ramon@example.com")

	require.NoError(t, e.seed.SeedIfEmpty())

	users, err := e.users.List()
	require.NoError(t, err)
	assert.Len(t, users, 1, "un almacén con usuarios no recibe usuarios demo")
}

func TestSeed_SinProductorCreaUno(t *testing.T) {
	e := newEnv(t)
	// Solo hay un consumidor: la siembra de productos necesita fabricar un productor
	e.registerConsumer(t, "Sita", "sita@example.com")

	require.NoError(t, e.seed.SeedIfEmpty())

	users, err := e.users.List()
	require.NoError(t, err)

	var producer *entity.User
	for _, u := range users {
		if u.IsProducer() {
			producer = u
		}
	}
	require.NotNil(t, producer, "aparece un productor demo para ser dueño de los productos")

	products, err := e.products.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, producer.ID, p.ProducerID, "los productos de muestra referencian un productor real")
	}
}
