package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
)

func TestCart_Add_FusionaLineasDelMismoProducto(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p := e.createProduct(t, producer, "Tomates", 40, 200)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(consumer, p.ID, 3)
	require.NoError(t, err)
	out, err := e.cart.Add(consumer, p.ID, 3)
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "el mismo producto dos veces es una sola línea")
	assert.Equal(t, 6, out.Items[0].Quantity, "las cantidades se suman")
}

func TestCart_Add_Guardas(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p := e.createProduct(t, producer, "Tomates", 40, 200)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(nil, p.ID, 1)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = e.cart.Add(producer, p.ID, 1)
	assert.ErrorIs(t, err, domain.ErrRoleNotAllowed, "un productor no tiene carrito")

	_, err = e.cart.Add(consumer, "fantasma", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.cart.Add(consumer, p.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.cart.Add(consumer, p.ID, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El precio de la línea es el que el comprador vio al agregar: subirlo
// después no toca el carrito.
func TestCart_Add_CopiaElPrecioAlAgregar(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p := e.createProduct(t, producer, "Tomates", 40, 200)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(consumer, p.ID, 2)
	require.NoError(t, err)

	_, err = e.catalog.Update(producer, p.ID, dto.UpdateProductRequest{Price: decPtr(99)})
	require.NoError(t, err)

	out, err := e.cart.Get(consumer)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Price.Equal(decimal.NewFromInt(40)),
		"la línea conserva el precio del momento de agregar")
}

func TestCart_ChangeQuantity_EliminaLaLineaBajoUno(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p := e.createProduct(t, producer, "Tomates", 40, 200)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(consumer, p.ID, 2)
	require.NoError(t, err)

	out, err := e.cart.ChangeQuantity(consumer, 0, -1)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Quantity)

	out, err = e.cart.ChangeQuantity(consumer, 0, -1)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "cantidad bajo 1 elimina la línea, no la deja en cero")
}

func TestCart_ChangeQuantity_IndiceInvalido(t *testing.T) {
	e := newEnv(t)
	e.registerProducer(t, "Ramón", "ramon@example.com")
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.ChangeQuantity(consumer, 0, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.cart.ChangeQuantity(consumer, -1, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_RemoveYClear(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p1 := e.createProduct(t, producer, "Tomates", 40, 200)
	p2 := e.createProduct(t, producer, "Papas", 25, 400)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(consumer, p1.ID, 1)
	require.NoError(t, err)
	_, err = e.cart.Add(consumer, p2.ID, 2)
	require.NoError(t, err)

	out, err := e.cart.Remove(consumer, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, p2.ID, out.Items[0].ProductID)

	require.NoError(t, e.cart.Clear(consumer))
	out, err = e.cart.Get(consumer)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCart_Total(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p1 := e.createProduct(t, producer, "Tomates", 40, 200)
	p2 := e.createProduct(t, producer, "Papas", 25, 400)
	consumer := e.registerConsumer(t, "Sita", "sita@example.com")

	_, err := e.cart.Add(consumer, p1.ID, 3) // 120
	require.NoError(t, err)
	out, err := e.cart.Add(consumer, p2.ID, 2) // 50
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.NewFromInt(170)),
		"el total es la suma de precio × cantidad por línea, fue %s", out.Total)
}

func TestCart_CarritosIndependientesPorComprador(t *testing.T) {
	e := newEnv(t)
	producer := e.registerProducer(t, "Ramón", "ramon@example.com")
	p := e.createProduct(t, producer, "Tomates", 40, 200)
	sita := e.registerConsumer(t, "Sita", "sita@example.com")
	gita := e.registerConsumer(t, "Gita", "gita@example.com")

	_, err := e.cart.Add(sita, p.ID, 5)
	require.NoError(t, err)

	out, err := e.cart.Get(gita)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "cada comprador tiene su propio carrito")
}
