package localstore

import (
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el almacén local.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) load() ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.store.Load(CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create agrega un producto a la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	products = append(products, product)
	return r.store.Save(CollectionProducts, products)
}

// GetByID obtiene un producto por ID, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return r.store.Save(CollectionProducts, products)
		}
	}
	return domain.ErrNotFound
}

// UpdateAll reemplaza la colección completa preservando el orden recibido.
func (r *ProductRepo) UpdateAll(products []*entity.Product) error {
	return r.store.Save(CollectionProducts, products)
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.load()
}

// ListByProducer devuelve los productos de un productor, en orden de inserción.
func (r *ProductRepo) ListByProducer(producerID string) ([]*entity.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.ProducerID == producerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Delete elimina un producto por ID; borrar un ID inexistente es un no-op.
func (r *ProductRepo) Delete(id string) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	out := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return nil
	}
	return r.store.Save(CollectionProducts, out)
}
