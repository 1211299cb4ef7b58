package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SeedUseCase siembra datos de demostración la primera vez que se observa un
// almacén vacío: un productor, un consumidor y dos productos de muestra.
type SeedUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(users repository.UserRepository, products repository.ProductRepository) *SeedUseCase {
	return &SeedUseCase{users: users, products: products}
}

// SeedIfEmpty es idempotente: sobre un almacén no vacío no hace nada.
// Garantiza al menos un productor y dos productos de muestra.
func (uc *SeedUseCase) SeedIfEmpty() error {
	users, err := uc.users.List()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		now := time.Now()
		demo := []*entity.User{
			{
				ID:        uuid.New().String(),
				Name:      "Productor Ramón",
				Email:     "productor1@example.com",
				Password:  "pass",
				Role:      entity.RoleProducer,
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:        uuid.New().String(),
				Name:      "Compradora Sita",
				Email:     "comprador1@example.com",
				Password:  "pass",
				Role:      entity.RoleConsumer,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		for _, u := range demo {
			if err := uc.users.Create(u); err != nil {
				return err
			}
		}
	}

	products, err := uc.products.List()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		producerID, err := uc.ensureProducer()
		if err != nil {
			return err
		}
		now := time.Now()
		demo := []*entity.Product{
			{
				ID:          uuid.New().String(),
				ProducerID:  producerID,
				Name:        "Tomates (1kg)",
				Description: "Tomates frescos y maduros",
				Price:       decimal.NewFromInt(40),
				Quantity:    200,
				Unit:        "kg",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          uuid.New().String(),
				ProducerID:  producerID,
				Name:        "Papas (1kg)",
				Description: "Papas de la región",
				Price:       decimal.NewFromInt(25),
				Quantity:    400,
				Unit:        "kg",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		}
		for _, p := range demo {
			if err := uc.products.Create(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureProducer devuelve el ID de algún productor existente; si no hay
// ninguno crea uno de demostración.
func (uc *SeedUseCase) ensureProducer() (string, error) {
	users, err := uc.users.List()
	if err != nil {
		return "", err
	}
	for _, u := range users {
		if u.IsProducer() {
			return u.ID, nil
		}
	}
	now := time.Now()
	producer := &entity.User{
		ID:        uuid.New().String(),
		Name:      "Productor Demo",
		Email:     "demo@agromercado.example",
		Password:  "pass",
		Role:      entity.RoleProducer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.users.Create(producer); err != nil {
		return "", err
	}
	return producer.ID, nil
}
