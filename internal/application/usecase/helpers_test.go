package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test: todos los casos de uso sobre un almacén real en un
// directorio temporal, exactamente como en producción.
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	store    *localstore.Store
	users    *localstore.UserRepo
	products *localstore.ProductRepo
	carts    *localstore.CartRepo
	txs      *localstore.TransactionRepo
	session  *localstore.SessionRepo

	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	ledger   *usecase.LedgerUseCase
	seed     *usecase.SeedUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err, "el almacén de test debe abrirse")
	t.Cleanup(func() { _ = store.Close() })

	e := &env{
		store:    store,
		users:    localstore.NewUserRepository(store),
		products: localstore.NewProductRepository(store),
		carts:    localstore.NewCartRepository(store),
		txs:      localstore.NewTransactionRepository(store),
		session:  localstore.NewSessionRepository(store),
	}
	e.auth = usecase.NewAuthUseCase(e.users, e.session)
	e.catalog = usecase.NewCatalogUseCase(e.products)
	e.cart = usecase.NewCartUseCase(e.carts, e.products)
	e.checkout = usecase.NewCheckoutUseCase(e.carts, e.products, e.txs)
	e.ledger = usecase.NewLedgerUseCase(e.txs, e.products)
	e.seed = usecase.NewSeedUseCase(e.users, e.products)
	return e
}

// register registra un usuario y devuelve la entidad en sesión.
func (e *env) register(t *testing.T, name, email, role string) *entity.User {
	t.Helper()
	_, err := e.auth.Register(dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "pw",
		Role:     role,
	})
	require.NoError(t, err, "el registro de %s debe funcionar", email)
	actor, err := e.auth.Current()
	require.NoError(t, err)
	require.NotNil(t, actor, "el registro deja al usuario en sesión")
	return actor
}

func (e *env) registerProducer(t *testing.T, name, email string) *entity.User {
	return e.register(t, name, email, entity.RoleProducer)
}

func (e *env) registerConsumer(t *testing.T, name, email string) *entity.User {
	return e.register(t, name, email, entity.RoleConsumer)
}

// createProduct publica un producto a nombre del actor.
func (e *env) createProduct(t *testing.T, actor *entity.User, name string, price int64, qty int) *dto.ProductResponse {
	t.Helper()
	out, err := e.catalog.Create(actor, dto.CreateProductRequest{
		Name:        name,
		Description: "fresco",
		Price:       decimal.NewFromInt(price),
		Quantity:    qty,
		Unit:        "kg",
	})
	require.NoError(t, err, "publicar %s debe funcionar", name)
	return out
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}
